package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/casbin/casbin"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/authorization"
	"github.com/Rahim00001/AuraStay-server/domain"
	"github.com/Rahim00001/AuraStay-server/handlers"
	application "github.com/Rahim00001/AuraStay-server/service"
	"github.com/Rahim00001/AuraStay-server/startup/config"
	store2 "github.com/Rahim00001/AuraStay-server/store"
)

type Server struct {
	config *config.Config
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) Start() {
	logger := logrus.New()

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	ctx := context.Background()
	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("aurastay_service")

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	userStore := server.initUserStore(mongoClient, tracer)
	roomStore := server.initRoomStore(mongoClient, tracer)
	bookingStore := server.initBookingStore(mongoClient, tracer)

	sessionService, err := application.NewSessionService([]byte(server.config.SecretKey), server.config.IsProduction(), logger)
	if err != nil {
		log.Fatal(err)
	}

	smtpPort, err := strconv.Atoi(server.config.SMTPPort)
	if err != nil {
		log.Fatalf("Invalid SMTP port: %v", err)
	}
	mailService := application.NewMailService(server.config.SMTPHost, smtpPort, server.config.SMTPEmail, server.config.SMTPPassword)

	userService := application.NewUserService(userStore, tracer)
	roomService := application.NewRoomService(roomStore, tracer)
	bookingService := application.NewBookingService(bookingStore, mailService, tracer, logger)
	statsService := application.NewStatsService(userStore, roomStore, bookingStore, tracer)
	paymentService := application.NewPaymentService("https://api.stripe.com", server.config.StripeSecretKey, httpClient, tracer, logger)

	enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
	if err != nil {
		log.Fatal(err)
	}
	gate := authorization.NewAccessGate(sessionService, userStore, enforcer, logger)

	authHandler := handlers.NewAuthHandler(sessionService, tracer, logger)
	userHandler := handlers.NewUserHandler(userService, tracer, logger)
	roomHandler := handlers.NewRoomHandler(roomService, tracer, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, tracer, logger)
	statsHandler := handlers.NewStatsHandler(statsService, tracer, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, tracer, logger)

	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(handlers.ExtractTraceInfoMiddleware)

	authHandler.Init(router)
	userHandler.Init(router, gate)
	roomHandler.Init(router, gate)
	bookingHandler.Init(router, gate)
	statsHandler.Init(router, gate)
	paymentHandler.Init(router, gate)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(server.config.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.AllowCredentials(),
	)

	server.start(cors(router))
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store2.GetClientWithHTTPConfig(server.config.AuraDBHost, server.config.AuraDBPort, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initUserStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	return store2.NewUserMongoDBStore(client, tracer)
}

func (server *Server) initRoomStore(client *mongo.Client, tracer trace.Tracer) domain.RoomStore {
	return store2.NewRoomMongoDBStore(client, tracer)
}

func (server *Server) initBookingStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	return store2.NewBookingMongoDBStore(client, tracer)
}

func (server *Server) start(handler http.Handler) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: handler,
	}

	wait := time.Second * 15
	go func() {
		log.Printf("AuraStay server is running on %s", server.config.Port)
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("aurastay_service"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}
