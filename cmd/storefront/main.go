package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veloura/storefront/internal/catalog"
	"github.com/veloura/storefront/internal/chat"
	"github.com/veloura/storefront/internal/config"
	"github.com/veloura/storefront/internal/dispatch"
	httpAPI "github.com/veloura/storefront/internal/http"
	"github.com/veloura/storefront/internal/http/controller"
	"github.com/veloura/storefront/internal/logger"
	"github.com/veloura/storefront/internal/metrics"
	"github.com/veloura/storefront/internal/prefs"
	"github.com/veloura/storefront/internal/service"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	// The catalog is supplied whole at startup and read-only afterwards.
	store, err := catalog.LoadStore(conf.Catalog.Path)
	handleErr("loading catalog", err)

	prefStore, err := prefs.Open(conf.Prefs.Path)
	handleErr("opening preference store", err)
	defer prefStore.Close()

	dispatcher := dispatch.New(
		conf.Delivery.WhatsAppPhone,
		conf.Delivery.OrderEmail,
		dispatch.EmailStrategy(conf.Delivery.EmailStrategy),
		conf.Delivery.WebmailHost,
	)

	storefrontService := service.NewStorefrontService(store, dispatcher, nil)

	// validated as numeric at config load
	typingDelayMS, _ := strconv.Atoi(conf.Chat.TypingDelayMS)
	responder := chat.NewResponder(
		rand.NewSource(time.Now().UnixNano()),
		prefStore,
		time.Duration(typingDelayMS)*time.Millisecond,
	)

	// Start HTTP server
	ctr := controller.New()
	catalogCtr := controller.NewCatalogController(storefrontService)
	orderCtr := controller.NewOrderController(storefrontService)
	prefsCtr := controller.NewPrefsController(prefStore)
	chatCtr := controller.NewChatController(responder, prefStore)

	httpServer := gin.Default()
	httpServer = httpAPI.InitRouter(conf, httpServer, ctr, catalogCtr, orderCtr, prefsCtr, chatCtr)

	go func() {
		err = httpServer.Run(":" + conf.HTTPServer.Port)
		if err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	// Start metrics server
	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
