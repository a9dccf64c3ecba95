package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/cache"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/messaging"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api"
	"github.com/vfg2006/ads-manager-api/internal/api/handler"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/copywriting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

func main() {
	// Formato de log antes da configuração, para os erros de carga aparecerem iguais
	log.Setup("info", "")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	redisCache, err := cache.New(cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisCache.Close()

	publisher, err := messaging.New(cfg.RabbitMQ)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao RabbitMQ")
	}
	defer publisher.Close()

	billingProvider, err := billing.NewProvider(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar provedor de pagamento")
	}

	userRepo := repository.NewUserRepository(pgConn)
	planRepo := repository.NewPlanRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	metaAccountRepo := repository.NewMetaAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	adMetricRepo := repository.NewAdMetricRepository(pgConn)

	metaIntegrator := meta.New(metaclient.NewClient(cfg))

	authenticator := authenticating.NewService(userRepo, cfg)
	subscriber := subscribing.NewService(
		planRepo,
		subscriptionRepo,
		userRepo,
		campaignRepo,
		adRepo,
		billingProvider,
		redisCache,
		publisher,
		cfg,
	)
	connector := connecting.NewService(metaAccountRepo, metaIntegrator)
	copywriter := copywriting.NewService(
		copywriting.NewGenerator(llm.NewOpenAIClient(cfg.OpenAI)),
		subscriber,
	)
	campaigner := campaigning.NewService(
		campaignRepo,
		metaAccountRepo,
		metaIntegrator,
		subscriber,
		redisCache,
		cfg.Redis.InsightsTTL,
	)
	advertiser := advertising.NewService(
		advertising.Repositories{
			Ads:          adRepo,
			AdSets:       adSetRepo,
			Campaigns:    campaignRepo,
			Creatives:    creativeRepo,
			Metrics:      adMetricRepo,
			MetaAccounts: metaAccountRepo,
		},
		metaIntegrator,
		subscriber,
		redisCache,
		cfg.Redis.InsightsTTL,
	)

	reconciler := scheduler.NewSyncReconciler(
		scheduler.SyncRepositories{
			Campaigns:    campaignRepo,
			AdSets:       adSetRepo,
			Ads:          adRepo,
			MetaAccounts: metaAccountRepo,
		},
		metaIntegrator,
		subscriber,
		cfg,
	)
	adMetricsSync := scheduler.NewAdMetricsSyncService(
		adRepo,
		adMetricRepo,
		metaAccountRepo,
		metaIntegrator,
		cfg,
	)

	// Inicia os agendadores em background
	if err := reconciler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação")
	} else {
		logrus.Info("Agendador de reconciliação iniciado com sucesso")
	}

	if err := adMetricsSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de métricas de anúncios")
	} else {
		logrus.Info("Agendador de métricas de anúncios iniciado com sucesso")
	}

	server, err := api.New(cfg, pgConn, redisCache, api.Services{
		Authenticator: authenticator,
		Subscriber:    subscriber,
		Connector:     connector,
		Copywriter:    copywriter,
		Campaigner:    campaigner,
		Advertiser:    advertiser,
		CronJobs: handler.CronJobServices{
			Reconciliation: reconciler,
			AdMetrics:      adMetricsSync,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
