package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"todo-api-backend/pkg/util/environment"

	"github.com/davecgh/go-spew/spew"

	"github.com/spf13/viper"
)

type config struct {
	AppEnv   string
	AppName  string
	Database struct {
		Dialect              string
		User                 string
		Password             string
		Addr                 string
		Net                  string
		DBName               string
		Port                 string
		File                 string
		MaxConns             int32
		Debug                bool
		AllowNativePasswords bool
		Params               struct {
			ParseTime string
			Charset   string
			Loc       string
			TLS       string
		}
	}
	Server struct {
		Address   string
		BodyLimit string
	}
	Log struct {
		Level    string
		Encoding string
	}
}

// C is config variable
var C config

// ReadConfigOption is a config option
type ReadConfigOption struct {
	AppEnv string
}

// ReadConfig configures config file
func ReadConfig(option ReadConfigOption) {
	Config := &C

	e := appEnv(option)

	switch e {
	case environment.Test:
		setConfigName("config.test")
	case environment.E2E:
		setConfigName("config.e2e")
	case environment.Staging:
		setConfigName("config.staging")
	case environment.Development:
		setConfigName("config")
	default:
		setConfigName("config.production")
	}

	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalln(err)
	}

	if err := viper.Unmarshal(&Config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	C.AppEnv = e

	if e == environment.Development {
		spew.Dump(C)
	}
}

func appEnv(option ReadConfigOption) string {
	if option.AppEnv != "" {
		return option.AppEnv
	}
	if os.Getenv("APP_ENV") != "" {
		return os.Getenv("APP_ENV")
	}

	return environment.Development
}

func rootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

func setConfigName(name string) {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName(name)
}
