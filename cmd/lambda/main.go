package main

import (
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/tsc11539/amazon-shortener/internal/config"
	httpx "github.com/tsc11539/amazon-shortener/internal/http"
	"github.com/tsc11539/amazon-shortener/internal/lambdaproxy"
	"github.com/tsc11539/amazon-shortener/internal/logging"
)

var handler lambdaproxy.HandlerFunc

func init() {
	cfg, env, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := logging.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format); err != nil {
		panic("Failed to configure logging: " + err.Error())
	}

	if !config.IsServerless() {
		logrus.Warn("AWS_LAMBDA_FUNCTION_NAME is not set; running outside Lambda")
	}

	handler = lambdaproxy.Handler(httpx.NewRouter(cfg, env))
}

func main() {
	awslambda.Start(handler)
}
