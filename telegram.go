package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/go-telegram-bot-api/telegram-bot-api"
)

// notifyTimeout caps the single outbound provider call. There is no
// retry: a slow provider fails the whole operation.
const notifyTimeout = 10 * time.Second

var notifyClient = &http.Client{Timeout: notifyTimeout}

// sendNotification relays a text message through the bot identified by
// token and returns the provider's response body verbatim.
func sendNotification(token, chatID, text string) (json.RawMessage, error) {
	params := url.Values{
		"chat_id": {chatID},
		"text":    {text},
	}

	endpoint := fmt.Sprintf(tgbotapi.APIEndpoint, token, "sendMessage")

	resp, err := notifyClient.PostForm(endpoint, params)
	if err != nil {
		if ue, ok := err.(*url.Error); ok && ue.Timeout() {
			return nil, TimeoutError{Err: err}
		}

		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiResp tgbotapi.APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		// A reply the provider's schema cannot explain is a gateway
		// failure even when it arrives with a success status.
		status := resp.StatusCode
		if status == http.StatusOK {
			status = http.StatusBadGateway
		}

		return nil, UpstreamError{Status: status, Body: string(body)}
	}

	if resp.StatusCode != http.StatusOK || !apiResp.Ok {
		return nil, UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
