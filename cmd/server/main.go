package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinzhu/gorm"

	"github.com/anverk/miniblog/internal/api"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/internal/comment"
	"github.com/anverk/miniblog/internal/config"
	"github.com/anverk/miniblog/internal/post"
	"github.com/anverk/miniblog/internal/storage/memory"
	"github.com/anverk/miniblog/internal/storage/postgres"
	"github.com/anverk/miniblog/internal/user"
)

func main() {
	storageType := flag.String("storage", "memory", "Тип хранилища: memory или postgres")
	staticDir := flag.String("static", "static", "Каталог одностраничного клиента (пустая строка отключает)")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	tokens := auth.NewJWTManager(config.GetEnv("JWT_SECRET"))

	var postStore post.PostStorage
	var commentStore comment.CommentStorage
	var userStore user.UserStorage
	var db *gorm.DB

	switch *storageType {
	case "postgres":
		var err error
		db, err = postgres.InitDB()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		userStore = postgres.NewUserPostgresStorage(db)
		postStore = postgres.NewPostPostgresStorage(db)
		commentStore = postgres.NewCommentPostgresStorage(db)

	case "memory":
		log.Println("Используется in-memory хранилище")
		userStore = memory.NewUserMemoryStorage()
		postStore = memory.NewPostMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage(postStore)

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	handler := api.NewHandler(userStore, postStore, commentStore, tokens)
	router := api.NewRouter(handler, tokens, *staticDir)

	// HTTP сервер
	server := &http.Server{
		Addr:    ":" + config.GetEnvDefault("PORT", "8080"),
		Handler: router,
	}

	// запуск HTTP сервера
	go func() {
		log.Printf("Сервер запущен на http://localhost%s/", server.Addr)
		// строка не возвращается (блокирует поток) пока не выполнится server.Shutdown() или не произойдет фатальная ошибка
		// Поэтому запускаем goroutine
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // ждет сигнал

	log.Println("Завершение...")

	if db != nil {
		if err := postgres.CloseDB(db); err != nil {
			log.Printf("Ошибка при закрытии базы: %v", err)
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}
