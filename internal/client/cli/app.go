package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/apiclient"
	"github.com/dmitrijs2005/uniswap/internal/client/chat"
	"github.com/dmitrijs2005/uniswap/internal/client/config"
	"github.com/dmitrijs2005/uniswap/internal/client/navigation"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/uniswap/internal/client/repositories/viewcache"
	"github.com/dmitrijs2005/uniswap/internal/client/services"
	"github.com/dmitrijs2005/uniswap/internal/client/session"
	"github.com/dmitrijs2005/uniswap/internal/client/storage"
	"github.com/dmitrijs2005/uniswap/internal/logging"
)

type App struct {
	store  *session.Store
	router *navigation.Router
	caches viewcache.Cache
	sender *chat.Sender
	norm   *normalize.Normalizer

	auth     services.AuthService
	items    services.ItemService
	tuitions services.TuitionService
	users    services.UserService
	messages services.MessageService
	wishlist services.WishlistService
	uploads  services.UploadService
	borrow   services.BorrowService

	log    logging.Logger
	now    func() time.Time
	reader *bufio.Reader
	out    io.Writer

	closers []func() error
}

// NewApp opens local storage, restores the persisted session and wires
// the services against cfg.APIBaseURL. Close releases what it opened.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	caches, closeCache, err := viewcache.Open(ctx, viewcache.Options{
		Backend:       cfg.CacheBackend,
		DB:            db,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error opening view cache: %w", err)
	}

	a := newApp(db, caches, cfg, log, in, out)
	a.closers = append(a.closers, closeCache, db.Close)

	if err := a.store.Init(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func newApp(db *sql.DB, caches viewcache.Cache, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	store := session.NewStore(sessions.NewSQLiteRepository(db), caches, session.WithLogger(log))
	router := navigation.NewRouter(navigation.RouteHome)

	api := apiclient.New(cfg.APIBaseURL, store,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithLogger(log),
		apiclient.WithObserver(store),
		apiclient.WithObserver(router),
	)
	norm := normalize.New(api.BaseURL())
	auth := services.NewAuthService(api)
	store.UseAuthenticator(auth)
	messages := services.NewMessageService(api)

	return &App{
		store:    store,
		router:   router,
		caches:   caches,
		sender:   chat.NewSender(messages, cfg.SendGuardWindow),
		norm:     norm,
		auth:     auth,
		items:    services.NewItemService(api, norm),
		tuitions: services.NewTuitionService(api),
		users:    services.NewUserService(api),
		messages: messages,
		wishlist: services.NewWishlistService(api, norm),
		uploads:  services.NewUploadService(api),
		borrow:   services.NewBorrowService(api),
		log:      log,
		now:      time.Now,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to UniSwap CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		a.router.Navigate(navigation.RouteBrowse)
	} else {
		a.router.Navigate(navigation.RouteLogin)
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close disposes the session store and releases storage.
func (a *App) Close(ctx context.Context) error {
	a.sender.Close()
	errs := []error{a.store.Dispose(ctx)}
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.store.State() == session.StateAuthenticated
}

func (a *App) getStatus() string {
	name := "guest"
	if u, err := a.store.User(); err == nil {
		name = u.Username
	}
	return fmt.Sprintf("(%s %s)", name, a.router.Current())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}
