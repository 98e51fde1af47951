package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"setu/config"
	moduleControllers "setu/controllers/module"
	"setu/database"
	"setu/models"
	"setu/pipeline"
	clusterRoutes "setu/routers/clusterRoutes"
	manualRoutes "setu/routers/manualRoutes"
	moduleRoutes "setu/routers/moduleRoutes"
	"setu/services"
	"setu/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Exported PDFs are served here; BASE_URL + /exports/<filename> is the
	// download link embedded in WhatsApp messages.
	app.Static("/exports", config.AppConfig.ExportDir)

	db := database.Database.Db
	cfg := config.AppConfig

	retriever := services.NewRagRetriever(cfg.RagApiURL)
	adapter := services.NewAIAdapter(cfg.AdaptApiURL)
	renderer := services.NewPDFRenderer(cfg.RenderApiURL, cfg.ExportDir)
	whatsapp := services.NewTwilioWhatsApp(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber)

	exporter := &pipeline.Exporter{DB: db, Renderer: renderer}

	generator := &pipeline.Generator{DB: db, Retriever: retriever, Adapter: adapter}
	approver := &pipeline.Approver{
		DB:       db,
		Exporter: exporter,
		Notify: func(module *models.Module, pdf *models.ExportedPDF) {
			var cluster models.Cluster
			if err := db.First(&cluster, module.ClusterID).Error; err != nil {
				log.Printf("Approval notification skipped, cluster lookup failed: %v", err)
				return
			}
			utils.SendModuleApprovedEmail(module.Title, cluster.Name, module.Language, pdf.Filename)
		},
	}
	dispatcher := &pipeline.Dispatcher{
		DB:          db,
		Exporter:    exporter,
		Sender:      whatsapp,
		BaseURL:     cfg.BaseURL,
		Concurrency: cfg.DispatchConcurrency,
		SendTimeout: time.Duration(cfg.SendTimeoutSec) * time.Second,
	}

	mc := moduleControllers.NewModuleController(generator, approver, dispatcher)

	clusterRoutes.SetupClusterRoutes(app)
	manualRoutes.SetupManualRoutes(app)
	moduleRoutes.SetupModuleRoutes(app, mc)

	utils.StartExportScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
