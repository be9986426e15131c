package setup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/notion"
	"tableflip.dev/momentchen/pkg/printers"
)

// Setup walks the user through connecting a Notion workspace: token first,
// then the three database ids. Flags can pre-fill any of the fields.
type Setup struct {
	Token     string
	Moments   string
	Projects  string
	LifeAreas string

	Creds      credstore.Store
	ClientOpts []notion.Option

	In  io.Reader
	Out io.Writer
}

func (s *Setup) in() io.Reader {
	if s.In != nil {
		return s.In
	}
	return os.Stdin
}

func (s *Setup) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Setup) Do(ctx context.Context) error {
	reader := bufio.NewReader(s.in())

	token, err := s.prompt(reader, "Notion integration token", s.Token)
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("setup: a token is required")
	}

	client := notion.New(token, s.ClientOpts...)
	ok, err := client.ValidateToken(ctx)
	if err != nil {
		return fmt.Errorf("setup: could not reach Notion: %w", err)
	}
	if !ok {
		return errors.New("setup: the token was rejected, check the integration secret")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Databases shared with this integration")
	refs, err := client.SearchDatabases(ctx)
	if err != nil {
		return fmt.Errorf("setup: list databases: %w", err)
	}
	pp.Databases(refs)

	moments, err := s.prompt(reader, "Moments database id", s.Moments)
	if err != nil {
		return err
	}
	projects, err := s.prompt(reader, "Projects database id", s.Projects)
	if err != nil {
		return err
	}
	lifeAreas, err := s.prompt(reader, "Life areas database id", s.LifeAreas)
	if err != nil {
		return err
	}

	svc := app.New(s.Creds, app.WithClientOptions(s.ClientOpts...))
	cfg := &credstore.Config{
		Token: token,
		Databases: credstore.Databases{
			Moments:   moments,
			Projects:  projects,
			LifeAreas: lifeAreas,
		},
	}
	if err := svc.SaveConfig(ctx, cfg); err != nil {
		return err
	}

	g := color.New(color.FgGreen)
	_, _ = g.Fprintln(s.out(), "Connected. Log your first moment with `momentchen add`.")
	return nil
}

// prompt asks for a value unless it was pre-filled by a flag.
func (s *Setup) prompt(reader *bufio.Reader, label, prefilled string) (string, error) {
	if prefilled != "" {
		return strings.TrimSpace(prefilled), nil
	}
	if _, err := fmt.Fprintf(s.out(), "%s: ", label); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
