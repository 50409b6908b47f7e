package di

import (
	"fmt"
	"log"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoportal "github.com/AlainDede/Delphinium-gestion-site/apps/portal/echo"
	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
	appfs "github.com/AlainDede/Delphinium-gestion-site/fs"
	logsvc "github.com/AlainDede/Delphinium-gestion-site/services/logger"
	"github.com/AlainDede/Delphinium-gestion-site/storage/database"
	inmemdb "github.com/AlainDede/Delphinium-gestion-site/storage/database/inmem"
	sqlxrepos "github.com/AlainDede/Delphinium-gestion-site/storage/database/sqlx"
)

// StoreMemory keeps sessions in process memory; they are lost on restart.
const StoreMemory = "memory"

type (
	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	// Shutdown receives a signal whenever the server asks the process to stop.
	Shutdown chan os.Signal

	// CloseFunc releases the session store.
	CloseFunc func() error
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "PORTAL : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

// newSessionStore picks the session store named by the configuration. Database stores are created and migrated first.
func newSessionStore(conf *core.Config, loggerParam DBLoggerParam) (session.Store, CloseFunc) {
	if conf.Session.Store == StoreMemory {
		return inmemdb.NewSessionStore(inmemdb.Open()), func() error { return nil }
	}

	dbConf := *conf
	dbConf.Database.Engine = conf.Session.Store
	if err := database.CreateIfNotExist(&dbConf); err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	db, err := database.Open(&dbConf)
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	if err = database.Migrate(db, dbConf.Database.Engine); err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("migrating database: %v", err), err)
	}
	return sqlxrepos.NewSessionStore(db), db.Close
}

func newAPIClient(conf *core.Config) (*gateway.Client, error) {
	return gateway.New(gateway.Options{BaseURL: conf.API.BaseURL, Timeout: conf.API.Timeout})
}

func newValidator(uni *ut.UniversalTranslator) (*validator.Validate, error) {
	validate := validator.New()
	if err := core.InitValidators(validate, uni); err != nil {
		return nil, err
	}
	return validate, nil
}

func newShutdown() Shutdown {
	return make(Shutdown, 1)
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	store session.Store,
	api *gateway.Client,
	uni *ut.UniversalTranslator,
	validate *validator.Validate,
	shutdown Shutdown,
) (echoportal.Server, error) {
	return echoportal.NewServer(
		&echoportal.Options{
			Address:       conf.Server.Address,
			Debug:         conf.Debug,
			TestMode:      conf.TestMode,
			CookieSecure:  conf.Server.CookieSecure,
			SecretKey:     conf.SecretKey,
			DefaultLocale: core.ParseLocale(conf.DefaultLocale, core.LocaleFR),
			ShutdownSignal: func() {
				select {
				case shutdown <- syscall.SIGTERM:
				default:
				}
			},
		},
		&echoportal.Deps{
			Logger:    logger,
			Sessions:  session.NewManager(store),
			API:       api,
			Uni:       uni,
			Validate:  validate,
			Templates: appfs.FS,
		},
	)
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newSessionStore))
	must(c.Provide(newAPIClient))
	must(c.Provide(core.NewUniversalTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newShutdown))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
