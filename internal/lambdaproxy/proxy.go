// Package lambdaproxy runs an http.Handler behind API Gateway HTTP APIs and
// Lambda function URLs.
package lambdaproxy

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/google/uuid"
)

// RequestIDHeader carries the invocation's request id into the handler.
const RequestIDHeader = "X-Request-Id"

// HandlerFunc is the signature lambda.Start expects.
type HandlerFunc func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// Handler adapts h to a Lambda handler.
func Handler(h http.Handler) HandlerFunc {
	adapter := httpadapter.NewV2(h)

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		event.Headers = withRequestID(event)
		return adapter.ProxyWithContext(ctx, event)
	}
}

// withRequestID returns a copy of the event headers that always holds a
// request id: the client's, else the invocation's, else a fresh uuid.
func withRequestID(event events.APIGatewayV2HTTPRequest) map[string]string {
	headers := make(map[string]string, len(event.Headers)+1)
	for k, v := range event.Headers {
		if strings.EqualFold(k, RequestIDHeader) && v != "" {
			return event.Headers
		}
		headers[k] = v
	}

	id := event.RequestContext.RequestID
	if id == "" {
		id = uuid.New().String()
	}
	headers[RequestIDHeader] = id
	return headers
}
