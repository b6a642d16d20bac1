package events

// TopicProductAdded labels notifications sent when a product joins the catalog.
const TopicProductAdded = "product.added"
