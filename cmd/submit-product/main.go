// submit-product — консольная форма добавления товара: логин, загрузка
// изображения, создание карточки. Удобна для наполнения каталога без браузера.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/bangshop/admin/internal/submit"
)

func main() {
	_ = godotenv.Load(".env.local")

	var (
		baseURL     = flag.String("addr", envOr("ADMIN_ADDR", "http://localhost:8080"), "адрес админ-консоли")
		login       = flag.String("login", envOr("ADMIN_LOGIN", "admin"), "логин сотрудника")
		password    = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "пароль сотрудника")
		name        = flag.String("name", "", "название товара")
		price       = flag.String("price", "", "цена, например 9.99")
		description = flag.String("description", "", "описание товара")
		imagePath   = flag.String("image", "", "путь к файлу изображения")
		imageURL    = flag.String("image-url", "", "URL уже загруженного изображения")
		timeout     = flag.Duration("timeout", time.Minute, "таймаут всей операции")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := submit.NewClient(*baseURL, nil)

	if err := client.Login(ctx, *login, *password); err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}

	res, err := client.Submit(ctx, submit.Input{
		Name:        *name,
		Price:       *price,
		Description: *description,
		ImagePath:   *imagePath,
		ImageURL:    *imageURL,
	})
	if err != nil {
		var stepErr *submit.StepError
		if errors.As(err, &stepErr) {
			fmt.Fprintf(os.Stderr, "submit failed on %s step: %v\n", stepErr.Step, stepErr.Err)
		} else {
			fmt.Fprintf(os.Stderr, "submit failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("product created: id=%s image=%s\n", res.ProductID, res.ImageURL)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
