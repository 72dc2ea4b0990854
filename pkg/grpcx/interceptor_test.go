package grpcx

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func counterValue(t *testing.T, reg *prometheus.Registry, method, code string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range families {
		if f.GetName() != "catalog_grpc_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["method"] == method && labels["status_code"] == code {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestUnaryCountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	unary := NewInterceptors(reg, "catalog", "catalog-service").Unary()
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	ok := func(context.Context, any) (any, error) { return "serving", nil }
	unavailable := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unavailable, "catalog not loaded")
	}

	if resp, err := unary(context.Background(), nil, info, ok); err != nil || resp != "serving" {
		t.Fatalf("resp %v err %v", resp, err)
	}
	if _, err := unary(context.Background(), nil, info, unavailable); status.Code(err) != codes.Unavailable {
		t.Fatalf("err %v", err)
	}

	if got := counterValue(t, reg, info.FullMethod, "OK"); got != 1 {
		t.Fatalf("OK count %v", got)
	}
	if got := counterValue(t, reg, info.FullMethod, "Unavailable"); got != 1 {
		t.Fatalf("Unavailable count %v", got)
	}
}
