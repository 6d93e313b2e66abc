package apiutil

import "net/http"

// Envelope wraps a successful response payload.
type Envelope[T any] struct {
	Success bool `json:"success" doc:"Always true"`
	Data    T    `json:"data"`
}

// Output is a huma output carrying an enveloped body and a status code.
type Output[T any] struct {
	Status int
	Body   Envelope[T]
}

// OK returns a 200 response with data.
func OK[T any](data T) *Output[T] {
	return &Output[T]{Status: http.StatusOK, Body: Envelope[T]{Success: true, Data: data}}
}

// Created returns a 201 response with data.
func Created[T any](data T) *Output[T] {
	return &Output[T]{Status: http.StatusCreated, Body: Envelope[T]{Success: true, Data: data}}
}

// MessageBody is returned by operations that only report success, such as
// deletes.
type MessageBody struct {
	Success bool   `json:"success" doc:"Always true"`
	Message string `json:"message" doc:"Human readable result"`
}

type MessageOutput struct {
	Body MessageBody
}

// Message returns a 200 response carrying msg.
func Message(msg string) *MessageOutput {
	return &MessageOutput{Body: MessageBody{Success: true, Message: msg}}
}
