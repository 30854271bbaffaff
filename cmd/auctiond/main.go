package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/auctionward/auctiond/internal/config"
	"github.com/auctionward/auctiond/internal/core/application"
	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
	"github.com/auctionward/auctiond/internal/infrastructure/oracle"
	webhookpubsub "github.com/auctionward/auctiond/internal/infrastructure/pubsub/webhook"
	"github.com/auctionward/auctiond/internal/infrastructure/registry"
	dbbadger "github.com/auctionward/auctiond/internal/infrastructure/storage/db/badger"
	"github.com/auctionward/auctiond/internal/infrastructure/treasury"
	httpinterface "github.com/auctionward/auctiond/internal/interfaces/http"
	"github.com/auctionward/auctiond/pkg/poller"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := dbbadger.NewRepoManager(config.GetDbDir(), nil)
	if err != nil {
		log.WithError(err).Fatal("failed to open datadir")
	}
	defer repoManager.Close()

	if err := initFeeConfig(repoManager); err != nil {
		log.WithError(err).Fatal("failed to init fee configuration")
	}

	registrySvc, err := registry.NewService(config.GetString(config.RegistryAddrKey))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to asset registry")
	}
	treasurySvc, err := treasury.NewService(config.GetString(config.TreasuryAddrKey))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to treasury")
	}

	oracleSvc := oracle.NewDisabledService()
	if oracleAddr := config.GetString(config.OracleAddrKey); len(oracleAddr) > 0 {
		oracleSvc, err = oracle.NewService(oracleAddr)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to randomness provider")
		}
	}

	pubsubSvc, err := webhookpubsub.NewWebhookPubSubService(
		config.GetDbDir(), nil, []string{
			application.TopicNewBid,
			application.TopicAuctionEnded,
			application.TopicAuctionCancelled,
		},
	)
	if err != nil {
		log.WithError(err).Fatal("failed to open webhook store")
	}
	defer pubsubSvc.Close()

	locker := application.NewAssetLocker()
	auctionSvc := application.NewAuctionService(repoManager, registrySvc)
	bidSvc := application.NewBidService(repoManager, treasurySvc, pubsubSvc, locker)
	settlementSvc := application.NewSettlementService(
		repoManager, registrySvc, oracleSvc, pubsubSvc, locker,
	)
	upkeepSvc := application.NewUpkeepService(repoManager, settlementSvc)
	operatorSvc := application.NewOperatorService(repoManager, pubsubSvc)

	server := httpinterface.NewServer(
		config.GetInt(config.ListeningPortKey),
		httpinterface.Services{
			AuctionSvc:    auctionSvc,
			BidSvc:        bidSvc,
			SettlementSvc: settlementSvc,
			UpkeepSvc:     upkeepSvc,
			OperatorSvc:   operatorSvc,
		},
	)

	go func() {
		log.Infof("http interface is listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("error listening on http interface")
		}
	}()

	var pollerSvc poller.Service
	if !config.GetBool(config.NoUpkeepKey) {
		pollerSvc = poller.NewService(poller.Opts{
			Target:                 application.UpkeepTarget{Svc: upkeepSvc},
			IntervalInMilliseconds: config.GetInt(config.UpkeepIntervalKey),
			ErrorHandler: func(err error) {
				log.WithError(err).Warn("upkeep poller")
			},
		})
		go pollerSvc.Start()
		log.Info("embedded upkeep poller started")
	}

	log.Info("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Info("shutting down")

	if pollerSvc != nil {
		pollerSvc.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("error shutting down http interface")
	}

	log.Info("exiting")
}

func initFeeConfig(repoManager ports.RepoManager) error {
	feeConfig, err := domain.NewFeeConfig(
		config.GetUint64(config.FeeBasisPointKey),
		config.GetString(config.FeeRecipientKey),
		config.GetString(config.AdminKey),
	)
	if err != nil {
		return err
	}
	return repoManager.FeeRepository().InitFeeConfig(context.Background(), feeConfig)
}
