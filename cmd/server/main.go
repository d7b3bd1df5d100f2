package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cliffordwilliam/ifabula-library/internal/config"
	"github.com/cliffordwilliam/ifabula-library/internal/db"
	handlers "github.com/cliffordwilliam/ifabula-library/internal/http/handler"
	"github.com/cliffordwilliam/ifabula-library/internal/http/middleware"
	"github.com/cliffordwilliam/ifabula-library/internal/repo"
	"github.com/cliffordwilliam/ifabula-library/internal/service"
	"github.com/cliffordwilliam/ifabula-library/pkg/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// --- Mongo ---
	mc, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mc.Disconnect(dctx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	mdb := mc.Database(cfg.DBName)

	// --- Repos ---
	userRepo := repo.NewUserRepoMongo(mdb)
	bookRepo := repo.NewBookRepoMongo(mdb)

	// --- Services ---
	tokens := token.NewService(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, tokens)
	libSvc := service.NewLibraryService(bookRepo, userRepo)

	// --- HTTP ---
	r := gin.Default()
	r.Use(cors.Default())
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true, "db": "mongo"}) })

	authH := handlers.NewAuthHandler(authSvc)
	bookH := handlers.NewBookHandler(libSvc)

	r.POST("/register", authH.Register)
	r.POST("/login", authH.Login)
	r.GET("/books", bookH.List)
	r.PATCH("/borrow/:title", middleware.Auth(tokens), bookH.Borrow)
	r.PATCH("/returnBook/:title", middleware.Auth(tokens), bookH.Return)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Printf("listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	stop()
	log.Println("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
