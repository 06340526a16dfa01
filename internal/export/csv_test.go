package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir/internal/export"
	"kasir/internal/models"
)

const payload = `{"salesData":[
	{"order_id":3,"customer_name":"Reyes, Ana","order_date":"2025-06-12","order_time":"09:15:00","total_amount":71,"status":"Completed",
	 "details":[{"product_name":"Pandesal","quantity":4,"unit_price":3.5,"subtotal":0},
	            {"product_name":"Ensaymada","quantity":2,"unit_price":"28.5"}]},
	{"order_id":1,"customer_name":"Lito","order_date":"2025-06-11","order_time":"17:40:05","total_amount":12.345,"status":"Completed","details":[]}
]}`

func decode(t *testing.T) []models.SalesOrder {
	t.Helper()
	var body struct {
		SalesData []models.SalesOrder `json:"salesData"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &body))
	return body.SalesData
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSummary(&buf, decode(t)))

	want := "Order ID,Customer Name,Order Date,Order Time,Total Order Amount (PHP),Status\n" +
		"3,\"Reyes, Ana\",2025-06-12,09:15:00,71.00,Completed\n" +
		"1,Lito,2025-06-11,17:40:05,12.35,Completed\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteDetails(&buf, decode(t)))

	want := "Order ID,Product Name,Quantity,Unit Price (PHP),Subtotal (PHP)\n" +
		"3,Pandesal,4,3.50,14.00\n" +
		"3,Ensaymada,2,28.50,57.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteDetails(&buf, nil))
	assert.Equal(t, "Order ID,Product Name,Quantity,Unit Price (PHP),Subtotal (PHP)\n", buf.String())
}
