package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/clientrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/preparingrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/staffrepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCreatePreparingOrderCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		DocsBaseDir: goDotEnvVariable("DOCS_BASE_DIR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&clientrepo.ClientDTO{},
		&staffrepo.EmployeeDTO{},
		&staffrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&preparingrepo.PreparingOrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateProduct:    app.CreateCreateProductCommandHandler(),
		CreateClient:     app.CreateCreateClientCommandHandler(),
		CreateEmployee:   app.CreateCreateEmployeeCommandHandler(),
		CreateCourier:    app.CreateCreateCourierCommandHandler(),
		CreateDraftOrder: app.CreateCreateDraftOrderCommandHandler(),
		GenerateOrder:    app.CreateGenerateOrderCommandHandler(),
		SignByClient:     app.CreateSignOrderByClientCommandHandler(),
		FinishOrder:      app.CreateFinishOrderCommandHandler(),
		DeleteOrder:      app.CreateDeleteOrderCommandHandler(),
		AppointPicker:    app.CreateAppointPickerCommandHandler(),
		FinishPreparing:  app.CreateFinishPreparingCommandHandler(),
		AppointCourier:   app.CreateAppointCourierCommandHandler(),
		FinishDelivery:   app.CreateFinishDeliveryCommandHandler(),

		GetOrder:           app.CreateGetOrderQueryHandler(),
		GetPreparingOrders: app.CreateGetPreparingOrdersQueryHandler(),
		GetDeliveries:      app.CreateGetDeliveriesQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
