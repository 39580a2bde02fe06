package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
)

const fallbackMessage = "An unexpected error occurred"

// Normalize mereduksi error dari request upstream menjadi satu string untuk
// ditampilkan ke user. Urutan resolusi, yang pertama cocok menang:
//
//  1. field "message" di body
//  2. field "errors" (map nama field -> array pesan): semua array digabung ", "
//  3. key kosong "" atau salah satu alias field milik entitas
//     (mis. "DepartmentCode", "Email"): elemen pertama
//  4. status 404 / 500 -> pesan baku
//  5. pesan transport error, atau fallback generik
//
// Satu implementasi dipakai kedua entitas; perbedaan backend cukup
// diparameterkan lewat aliases.
func Normalize(err error, aliases ...string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fallbackMessage
	}

	if len(apiErr.Body) > 0 {
		var payload map[string]json.RawMessage
		if json.Unmarshal(apiErr.Body, &payload) == nil {
			if msg, ok := stringField(payload, "message"); ok && msg != "" {
				return msg
			}
			if msg, ok := flattenErrors(payload["errors"]); ok {
				return msg
			}
			for _, key := range append([]string{""}, aliases...) {
				if msg, ok := firstMessage(payload, key); ok {
					return msg
				}
			}
		}
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	}

	if apiErr.Err != nil {
		return apiErr.Err.Error()
	}
	return fallbackMessage
}

func stringField(payload map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := payload[key]
	if !ok {
		return "", false
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	return s, true
}

// flattenErrors menangani bentuk {"errors": {"Field": ["msg", ...], ...}}.
// Key diurutkan supaya hasil join deterministik.
func flattenErrors(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil || len(fields) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var all []string
	for _, k := range keys {
		all = append(all, messageList(fields[k])...)
	}
	if len(all) == 0 {
		return "", false
	}
	return strings.Join(all, ", "), true
}

// firstMessage menangani bentuk {"DepartmentCode": ["msg"]} atau {"": ["msg"]};
// value boleh string tunggal atau array, yang diambil elemen pertamanya.
func firstMessage(payload map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := payload[key]
	if !ok {
		return "", false
	}
	msgs := messageList(raw)
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

func messageList(raw json.RawMessage) []string {
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	var single string
	if json.Unmarshal(raw, &single) == nil && single != "" {
		return []string{single}
	}
	return nil
}
