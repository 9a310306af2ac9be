package spreadsheet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/internal/adapters/spreadsheet"
	"go.trai.ch/digest/internal/core/domain"
)

const sheetJSON = `{
  "id": 7390293743617924,
  "name": "Tower A - Schedule",
  "columns": [
    {"id": 1001, "title": "Nome da Tarefa"},
    {"id": 1002, "title": "Status"},
    {"id": 1003, "title": "Data Inicio"},
    {"id": 1004, "title": "Data Término"},
    {"id": 1005, "title": "Disciplina"},
    {"id": 1006, "title": "Categoria de atraso"},
    {"id": 1007, "title": "Level"},
    {"id": 1008, "title": "Responsável"}
  ],
  "rows": [
    {"id": 8837492048291716, "cells": [
      {"columnId": 1001, "value": "Foundation design"},
      {"columnId": 1002, "value": "Feito"},
      {"columnId": 1003, "value": "2025-03-03"},
      {"columnId": 1004, "value": "2025-03-07T00:00:00"},
      {"columnId": 1005, "value": "Structure"},
      {"columnId": 1007, "value": 5},
      {"columnId": 1008, "value": null, "displayValue": "Ana"}
    ]},
    {"id": 2, "cells": [
      {"columnId": 1001, "value": "Electrical review"},
      {"columnId": 1002, "value": "Não Feito"},
      {"columnId": 1004, "value": "not a date"},
      {"columnId": 1006, "value": "Cliente"}
    ]},
    {"id": 3, "cells": [
      {"columnId": 9999, "value": "orphan"}
    ]}
  ]
}`

func TestFetchSheet(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheets/7390293743617924", r.URL.Path)
		assert.Equal(t, "Bearer sheet-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sheetJSON))
	}))
	t.Cleanup(ts.Close)

	client := spreadsheet.New(ts.URL, "sheet-token", ts.Client())
	sheet, err := client.FetchSheet(context.Background(), "7390293743617924")
	require.NoError(t, err)

	assert.Equal(t, "7390293743617924", sheet.SheetID)
	assert.Equal(t, "Tower A - Schedule", sheet.Name)
	assert.False(t, sheet.FetchedAt.IsZero())
	require.Len(t, sheet.Tasks, 2, "rows without recognised columns are dropped")

	first := sheet.Tasks[0]
	assert.Equal(t, "8837492048291716", first.RowID, "large row ids keep full precision")
	assert.Equal(t, "Foundation design", first.Name)
	assert.True(t, first.Done())
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), first.StartDate)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), first.EndDate)
	assert.Equal(t, "Structure", first.Discipline)
	assert.Equal(t, "Ana", first.Responsible)
	assert.Equal(t, 5, first.Level)

	second := sheet.Tasks[1]
	assert.True(t, second.Delayed())
	assert.True(t, second.EndDate.IsZero())
	assert.Equal(t, "Cliente", second.DelayCategory)

	// The result round-trips through the cache encoding unchanged.
	payload, err := json.Marshal(sheet)
	require.NoError(t, err)
	var decoded domain.SheetData
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, sheet.Tasks, decoded.Tasks)
}

func TestFetchSheet_Errors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sheets/busy" {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(ts.Close)

	client := spreadsheet.New(ts.URL, "sheet-token", ts.Client())

	_, err := client.FetchSheet(context.Background(), "busy")
	require.ErrorIs(t, err, domain.ErrTransientRemote)

	_, err = client.FetchSheet(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
}

func TestFetchSheet_NoToken(t *testing.T) {
	t.Parallel()

	client := spreadsheet.New("http://127.0.0.1:0", "", nil)
	_, err := client.FetchSheet(context.Background(), "1")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCredentialsMissing.Error())
}
