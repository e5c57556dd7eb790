package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/predictpool/backend/internal/platform/logging"
	"github.com/predictpool/backend/internal/usecase"
)

func TestStatusForBulkError(t *testing.T) {
	tests := []struct {
		name    string
		success bool
		code    string
		want    int
	}{
		{name: "success", success: true, want: http.StatusOK},
		{name: "unauthorized", code: usecase.CodeUnauthorized, want: http.StatusUnauthorized},
		{name: "missing scope", code: usecase.CodeRequireGroupOrPlayoff, want: http.StatusBadRequest},
		{name: "unknown group", code: usecase.CodeGroupNotFound, want: http.StatusNotFound},
		{name: "unknown round", code: usecase.CodePlayoffRoundNotFound, want: http.StatusNotFound},
		{name: "downstream error", code: "list results: connection refused", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForBulkError(tt.success, tt.code); got != tt.want {
				t.Fatalf("statusForBulkError(%v, %q) = %d, want %d", tt.success, tt.code, got, tt.want)
			}
		})
	}
}

func TestDecodeBulkScope(t *testing.T) {
	h := NewHandler(nil, nil, nil, logging.NewNop())

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "group scope", body: `{"group_id":"grp-a"}`},
		{name: "playoff scope", body: `{"playoff_round_id":"rd-1"}`},
		{name: "neither", body: `{}`, wantErr: true},
		{name: "both", body: `{"group_id":"grp-a","playoff_round_id":"rd-1"}`, wantErr: true},
		{name: "malformed json", body: `{"group_id":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/results/autofill", strings.NewReader(tt.body))
			scope, err := h.decodeBulkScope(req)

			if tt.wantErr {
				if !errors.Is(err, usecase.ErrInvalidInput) {
					t.Fatalf("decodeBulkScope error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeBulkScope returned error: %v", err)
			}
			if scope.IsZero() {
				t.Fatalf("decodeBulkScope returned a zero scope for %q", tt.body)
			}
		})
	}
}
