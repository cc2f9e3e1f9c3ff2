package convert

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrConversion, "run-conversion", "check output", cause)
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if got := err.Error(); got != "conversion failed: run-conversion: check output: exit status 1" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestWrapDefaults(t *testing.T) {
	err := Wrap(nil, "", "", nil)
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if err.Error() != "conversion failed: conversion failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
