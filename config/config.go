package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
)

const (
	defaultServerAddr      = ":8080"
	defaultDatabaseDSN     = ""
	defaultLogLevel        = "debug"
	defaultTelegramAPIURL  = "https://api.telegram.org"
	defaultProductPrice    = 79
	defaultProductCurrency = "EUR"
)

type Config struct {
	ServerAddr      string
	DatabaseDSN     string
	LogLevel        string
	TelegramAPIURL  string
	BotToken        string
	AdminChatID     int64
	BotAPIKey       string
	AdminLogin      string
	AdminPassHash   string
	TokenKey        string
	PaymentLink     string
	ProductPrice    int64
	ProductCurrency string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
// Secrets (bot token, admin credentials, token key) are environment-only.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{
			ProductPrice:    defaultProductPrice,
			ProductCurrency: defaultProductCurrency,
		}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "pause bot server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "pause bot database DSN")
		flag.StringVar(&cfg.TelegramAPIURL, "t", defaultTelegramAPIURL, "telegram bot api base url")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if telegramAPIEnv := os.Getenv("TELEGRAM_API_URL"); telegramAPIEnv != "" {
			cfg.TelegramAPIURL = telegramAPIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}

		cfg.BotToken = os.Getenv("BOT_TOKEN")
		cfg.BotAPIKey = os.Getenv("BOT_API_KEY")
		cfg.AdminLogin = os.Getenv("ADMIN_LOGIN")
		cfg.AdminPassHash = os.Getenv("ADMIN_PASSWORD_HASH")
		cfg.TokenKey = os.Getenv("TOKEN_KEY")
		cfg.PaymentLink = os.Getenv("PAYMENT_LINK")

		if adminChatEnv := os.Getenv("ADMIN_CHAT_ID"); adminChatEnv != "" {
			if id, err := strconv.ParseInt(adminChatEnv, 10, 64); err == nil {
				cfg.AdminChatID = id
			}
		}
		if priceEnv := os.Getenv("PRODUCT_PRICE"); priceEnv != "" {
			if price, err := strconv.ParseInt(priceEnv, 10, 64); err == nil && price > 0 {
				cfg.ProductPrice = price
			}
		}
		if currencyEnv := os.Getenv("PRODUCT_CURRENCY"); currencyEnv != "" {
			cfg.ProductCurrency = currencyEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
