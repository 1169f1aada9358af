package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr        string
	GinMode        string
	DBDSN          string
	JWTSecret      string
	RazorpayKeyID  string
	RazorpaySecret string
	CORSOrigins    []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	var origins []string
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:          strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret:      jwtSecret,
		RazorpayKeyID:  strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		RazorpaySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
		CORSOrigins:    origins,
	}
}
