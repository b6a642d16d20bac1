package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/toko-cli/internal/app"
	"github.com/noah-isme/toko-cli/internal/common"
)

const menu = "\n1. Agregar producto al carrito\n" +
	"2. Ver carrito\n" +
	"3. Consultar productos\n" +
	"4. Finalizar pedido\n" +
	"5. Salir\n" +
	"\nSeleccione una opción: "

const (
	msgInvalidOption   = "Opción no válida. Por favor, seleccione una opción válida."
	msgInvalidProduct  = "Producto no válido."
	msgInvalidQuantity = "Cantidad no válida."
)

var commands = map[string]string{
	"1": "add",
	"2": "view",
	"3": "list",
	"4": "finalize",
	"5": "exit",
}

// Shell runs the interactive menu of a session over a line-oriented reader.
type Shell struct {
	session *app.Session
	in      *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger
}

// New returns a shell reading commands from in and printing through the session writer.
func New(session *app.Session, in io.Reader) *Shell {
	return &Shell{
		session: session,
		in:      bufio.NewReader(in),
		out:     session.Out,
		logger:  session.Logger.With().Str("component", "shell").Logger(),
	}
}

// Run loops on the menu until the user exits or the input ends. Read errors other
// than end of input are returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, menu)
		option, err := s.readLine()
		if err != nil {
			return s.closed(err)
		}

		done, err := s.dispatch(ctx, option)
		if err != nil {
			return s.closed(err)
		}
		if done {
			s.logger.Info().Msg("session_closed")
			return nil
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, option string) (bool, error) {
	command, ok := commands[option]
	if !ok {
		command = "invalid"
	}
	s.session.Metrics.MenuCommands.WithLabelValues(command).Inc()

	_, span := s.session.Tracer.Start(ctx, "shell."+command)
	defer span.End()

	var err error
	switch command {
	case "add":
		err = s.addToCart(span)
	case "view":
		s.session.Cart.View()
	case "list":
		s.session.Catalog.WriteListing(s.out)
	case "finalize":
		err = s.finalize()
	case "exit":
		return true, nil
	default:
		fmt.Fprintln(s.out, msgInvalidOption)
		s.logger.Warn().Str("option", option).Msg("invalid_option")
	}
	if err != nil && !errors.Is(err, io.EOF) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return false, err
}

func (s *Shell) addToCart(span trace.Span) error {
	fmt.Fprint(s.out, "\nIngrese el nombre del producto: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "Ingrese la cantidad de productos: ")
	rawQty, err := s.readLine()
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("product", name))

	qty, err := common.ParseQuantity(rawQty)
	if err != nil {
		span.RecordError(err)
		fmt.Fprintln(s.out, msgInvalidQuantity)
		s.logger.Warn().Err(err).Str("input", rawQty).Msg("invalid_quantity")
		return nil
	}
	product, ok := s.session.Catalog.Lookup(name)
	if !ok {
		fmt.Fprintln(s.out, msgInvalidProduct)
		s.logger.Warn().Str("product", name).Msg("invalid_product")
		return nil
	}
	span.SetAttributes(attribute.Int("qty", qty))
	s.session.Cart.AddLine(product, qty)
	return nil
}

func (s *Shell) finalize() error {
	fmt.Fprint(s.out, "\nIngrese la dirección de envío: ")
	address, err := s.readLine()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "Ingrese el número de teléfono: ")
	phone, err := s.readLine()
	if err != nil {
		return err
	}
	s.session.Cart.FinalizeOrder(address, phone)
	return nil
}

// readLine returns the next line without its terminator. A final line lacking a
// newline is returned as is; io.EOF is reported on the following call.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) closed(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Info().Msg("session_closed")
		return nil
	}
	return fmt.Errorf("shell: read input: %w", err)
}
