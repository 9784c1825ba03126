package configuration

import (
	"fmt"
	"os"
	"strconv"

	"streamhub/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Token       Token       `json:"token"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Media       Media       `json:"media"`
}

type App struct {
	Port        int      `json:"port"`
	CORSOrigins []string `json:"corsOrigins"`
}

// Token holds the signing secrets and lifetimes of the two credentials. The
// values are threaded explicitly into the TokenManager constructor; business
// code never reads the environment.
type Token struct {
	AccessSecret     string `json:"accessSecret"`
	RefreshSecret    string `json:"refreshSecret"`
	AccessTTLMinutes int    `json:"accessTTLMinutes"`
	RefreshTTLDays   int    `json:"refreshTTLDays"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Media configures the blob storage adapter: an unsigned upload endpoint that
// accepts multipart posts and returns hosted URLs.
type Media struct {
	UploadURL    string `json:"uploadURL"`
	UploadPreset string `json:"uploadPreset"`
	TempDir      string `json:"tempDir"`
}

var C Config

func init() {
	Reload()
}

// Reload re-reads the config file and re-applies env fallbacks. Called again
// after env files are loaded, since package init runs before main.
func Reload() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initToken(&C)
	initMedia(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "streamhub"
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = "localhost"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}

	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = os.Getenv("REDIS_PORT")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = "6379"
	}
	if C.RedisClient.Username == "" {
		C.RedisClient.Username = os.Getenv("REDIS_USERNAME")
	}
	if C.RedisClient.Password == "" {
		C.RedisClient.Password = os.Getenv("REDIS_PASSWORD")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if len(C.App.CORSOrigins) == 0 {
		if v := os.Getenv("CORS_ORIGIN"); v != "" {
			C.App.CORSOrigins = []string{v}
		} else {
			C.App.CORSOrigins = []string{"http://localhost:3000"}
		}
	}
}

func initToken(C *Config) {
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		C.Token.AccessSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		C.Token.RefreshSecret = v
	}
	if C.Token.AccessTTLMinutes == 0 {
		C.Token.AccessTTLMinutes = 15
	}
	if C.Token.RefreshTTLDays == 0 {
		C.Token.RefreshTTLDays = 10
	}
	if C.Token.AccessSecret == "" || C.Token.RefreshSecret == "" {
		logger.GetLogger().Warn("Token secrets not set; authentication will fail. Provide ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET via environment.")
	}
}

func initMedia(C *Config) {
	if v := os.Getenv("MEDIA_UPLOAD_URL"); v != "" {
		C.Media.UploadURL = v
	}
	if v := os.Getenv("MEDIA_UPLOAD_PRESET"); v != "" {
		C.Media.UploadPreset = v
	}
	if C.Media.TempDir == "" {
		C.Media.TempDir = os.Getenv("MEDIA_TEMP_DIR")
	}
	if C.Media.TempDir == "" {
		C.Media.TempDir = "./public/temp"
	}
}
