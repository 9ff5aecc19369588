package handlers

import (
	"reflect"
	"testing"
)

func TestHostsFromCIDR(t *testing.T) {
	got, err := HostsFromCIDR("192.168.1.0/30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// network and broadcast trimmed
	want := []string{"192.168.1.1", "192.168.1.2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestHostsFromCIDRSingle(t *testing.T) {
	got, err := HostsFromCIDR("10.0.0.5/32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"10.0.0.5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestHostsFromCIDRInvalid(t *testing.T) {
	if _, err := HostsFromCIDR("not-a-cidr"); err == nil {
		t.Fatal("expected error for bad CIDR")
	}
}
