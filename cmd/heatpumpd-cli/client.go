package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type client struct {
	baseURL string
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

func (c *client) get(path string, dst any) error {
	resp, err := httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, dst)
}

func (c *client) post(path string, body any, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, dst)
}

func decodeResponse(resp *http.Response, dst any) error {
	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
			return fmt.Errorf("%s", envelope.Error)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
