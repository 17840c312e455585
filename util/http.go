package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

var sharedHTTPClient = &http.Client{Timeout: 60 * time.Second}

// HTTPClient returns the shared HTTP client for outbound requests
func HTTPClient() *http.Client {
	return sharedHTTPClient
}

// ReqByObjJSON performs an HTTP request with a JSON-marshaled input object and
// unmarshals the response body into the output object
func ReqByObjJSON(method, url, auth string, input, output interface{}) (*http.Response, error) {
	var requestBody []byte
	var err error

	if input != nil {
		if requestBody, err = json.Marshal(input); err != nil {
			return nil, err
		}
	}

	request, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if auth != "" {
		request.Header.Set("Authorization", auth)
	}

	response, err := HTTPClient().Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, _ := ioutil.ReadAll(response.Body)
	if response.StatusCode >= 400 {
		return response, HTTPErr{Status: response.StatusCode, Message: fmt.Sprintf("%s %s: %s", method, url, response.Status)}
	}

	if output != nil {
		if err = json.Unmarshal(responseBody, output); err != nil {
			return response, err
		}
	}

	return response, nil
}
