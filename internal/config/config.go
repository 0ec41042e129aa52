package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Clients ClientsConfig
	Breaker BreakerConfig
	Kafka   KafkaConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

// ClientsConfig 定義上游服務（Rooms、Users）的連線設置
type ClientsConfig struct {
	RoomsURL       string `mapstructure:"roomsUrl"`
	UsersURL       string `mapstructure:"usersUrl"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// Timeout 回傳上游請求的超時時間，未設置時預設 3 秒
func (c ClientsConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BreakerConfig 定義斷路器的觸發條件
type BreakerConfig struct {
	FailureThreshold int `mapstructure:"failureThreshold"`
	WindowSeconds    int `mapstructure:"windowSeconds"`
	CooldownSeconds  int `mapstructure:"cooldownSeconds"`
	HalfOpenMaxCalls int `mapstructure:"halfOpenMaxCalls"`
}

// Window 回傳失敗統計的時間窗口
func (c BreakerConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// Cooldown 回傳斷路器開啟後的冷卻時間
func (c BreakerConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

// KafkaConfig 定義事件發布的設置
type KafkaConfig struct {
	Brokers         []string
	AskCreatedTopic string `mapstructure:"askCreatedTopic"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./internal/config")

	// 環境變數覆寫，例如 ASKS_DB_PASSWORD 對應 db.password
	viper.SetEnvPrefix("asks")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
