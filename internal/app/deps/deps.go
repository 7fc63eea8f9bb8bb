package deps

import (
	"billremind/internal/config"
	"billremind/internal/core/domain/lock"
	dl "billremind/internal/core/domain/logging"
	dn "billremind/internal/core/domain/notification"
	dr "billremind/internal/core/domain/reminder"
	dbnotification "billremind/internal/db/notification"
	dbreminder "billremind/internal/db/reminder"
	leaderlock "billremind/internal/implementations/leader_lock"
	"billremind/internal/implementations/logging"
	"billremind/internal/rabbitmq"
	notificationevents "billremind/internal/rabbitmq/publishers/notification_events"
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	ReminderRepository dr.ReminderRepository
	NotificationSink   dn.Sink
	NotificationEvents dn.EventPublisher
	Locker             lock.Locker
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeNotificationEvents := deps.initNotificationEventPublisher()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)
	deps.NotificationSink = dbnotification.NewPgxNotificationSink(deps.DB)
	deps.Locker = leaderlock.NewRedis(deps.Redis, deps.Logger)

	return deps, func() {
		closeFuncs := []func(){
			closeNotificationEvents,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initNotificationEventPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqNotificationExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqNotificationQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqNotificationQueue,
		deps.Config.RabbitmqNotificationQueue,
		deps.Config.RabbitmqNotificationExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.NotificationEvents = notificationevents.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqNotificationExchange,
		deps.Config.RabbitmqNotificationQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down notification event publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Notification event publisher shut down.")
	}
}
