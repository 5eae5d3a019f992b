package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/postboard/internal/config"
	"github.com/dmitrijs2005/postboard/internal/identity"
	"github.com/dmitrijs2005/postboard/internal/logging"
	"github.com/dmitrijs2005/postboard/internal/render"
	"github.com/dmitrijs2005/postboard/internal/services"
	"github.com/dmitrijs2005/postboard/internal/state"
	"github.com/dmitrijs2005/postboard/internal/store"
)

type App struct {
	config    *config.Config
	store     store.Store
	svc       *services.Service
	log       logging.Logger
	presenter *presenter
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the configured store, loads the board from it and wires the
// service to the terminal. Corrupted persisted data is returned as an
// error.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewText(os.Stderr, c.LogLevel)

	creds, err := identity.NewCredentials(c.CredentialsMode)
	if err != nil {
		return nil, err
	}

	s, err := openStore(ctx, c, logger.Slog())
	if err != nil {
		logger.Error(ctx, "error opening store", "driver", c.StorageDriver, "error", err)
		return nil, err
	}

	st, err := state.Load(ctx, s)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("load board: %w", err)
	}

	logger.Info(ctx, "board loaded", "driver", c.StorageDriver, "location", c.Location(),
		"users", len(st.Users), "posts", len(st.Posts))

	return newApp(c, s, st, creds, logger, bufio.NewReader(os.Stdin), os.Stdout, DefaultStyles()), nil
}

func newApp(c *config.Config, s store.Store, st *state.State, creds identity.Credentials,
	logger logging.Logger, reader *bufio.Reader, out io.Writer, styles Styles) *App {

	a := &App{
		config:    c,
		store:     s,
		log:       logger,
		presenter: newPresenter(out, styles),
		reader:    reader,
		out:       out,
	}
	a.svc = services.NewService(st, s,
		services.WithCredentials(creds),
		services.WithNotifier(newNotifier(out, styles)),
		services.WithLogger(logger),
	)
	a.svc.Subscribe(a.render)
	return a
}

// render is the service subscriber: every change redraws the page.
func (a *App) render(ctx context.Context) {
	a.presenter.Present(render.Render(a.svc.State()))
}

// Run renders the initial page and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "error closing store", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.svc.SessionUser() != nil
}

func (a *App) isAdmin() bool {
	return identity.IsAdmin(a.svc.SessionUser())
}

func (a *App) getStatus() string {
	u := a.svc.SessionUser()
	if u == nil {
		return render.Session{Guest: true}.Label()
	}
	return render.Session{Name: u.Name, Role: u.Role}.Label()
}
