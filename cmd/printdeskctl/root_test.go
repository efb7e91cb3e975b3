package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/polkiloo/printdesk/internal/adapter/printdesk"
	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
)

type fakeClient struct {
	calls    []string
	shops    []dto.ShopResponse
	queue    dto.QueueResponse
	err      error
	verified map[string]string
}

func (f *fakeClient) SearchShops(_ context.Context, query string) ([]dto.ShopResponse, error) {
	f.calls = append(f.calls, "search:"+query)
	return f.shops, f.err
}

func (f *fakeClient) RegisterShop(_ context.Context, req dto.ShopRequest) (*dto.ShopResponse, error) {
	f.calls = append(f.calls, "register:"+req.ShopName+":"+req.Name)
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ShopResponse{ID: "shop-new", ShopName: req.ShopName}, nil
}

func (f *fakeClient) Queue(_ context.Context, search string) (*dto.QueueResponse, error) {
	f.calls = append(f.calls, "queue:"+search)
	if f.err != nil {
		return nil, f.err
	}
	return &f.queue, nil
}

func (f *fakeClient) Complete(_ context.Context, id string) error {
	f.calls = append(f.calls, "complete:"+id)
	return f.err
}

func (f *fakeClient) Verify(_ context.Context, id, code string) error {
	f.calls = append(f.calls, "verify:"+id)
	if f.err != nil {
		return f.err
	}
	if f.verified[id] != code {
		return domainErrors.ErrCodeMismatch
	}
	return nil
}

func (f *fakeClient) Reject(_ context.Context, id string) error {
	f.calls = append(f.calls, "reject:"+id)
	return f.err
}

func (f *fakeClient) Health(context.Context) error {
	f.calls = append(f.calls, "health")
	return f.err
}

func execute(t *testing.T, client *fakeClient, args ...string) (string, string, error) {
	t.Helper()
	var out bytes.Buffer
	var server string
	cmd := newRootCmd(&out, func(url string) (printdesk.Client, error) {
		server = url
		return client, nil
	})
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), server, err
}

func TestShopsSearch(t *testing.T) {
	client := &fakeClient{shops: []dto.ShopResponse{{ID: "shop-1", ShopName: "Quick Print Center", Name: "John Doe"}}}
	out, server, err := execute(t, client, "--server", "http://desk:9000", "shops", "search", "quick")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if server != "http://desk:9000" {
		t.Fatalf("expected server flag to be used, got %q", server)
	}
	if !strings.Contains(out, "Quick Print Center") || !strings.Contains(out, "shop-1") {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = execute(t, &fakeClient{}, "shops", "search", "none")
	if err != nil || !strings.Contains(out, "no shops found") {
		t.Fatalf("expected empty message, got %q %v", out, err)
	}

	if _, _, err := execute(t, &fakeClient{}, "shops", "search"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestShopsRegister(t *testing.T) {
	client := &fakeClient{}
	out, _, err := execute(t, client, "shops", "register",
		"--owner", "Ann", "--email", "a@b.c", "--phone", "555", "--name", "Copy Hut", "--address", "1 Main")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if client.calls[0] != "register:Copy Hut:Ann" || !strings.Contains(out, "shop-new") {
		t.Fatalf("unexpected calls %v output %q", client.calls, out)
	}

	if _, _, err := execute(t, &fakeClient{}, "shops", "register", "--owner", "Ann"); err == nil {
		t.Fatal("expected missing flags to fail")
	}
}

func TestQueueList(t *testing.T) {
	client := &fakeClient{queue: dto.QueueResponse{
		Entries: []dto.QueueEntryResponse{{ID: "sub-1", QueueNumber: 1, DisplayLabel: "User 1", State: "pending", TotalAmount: 20}},
		Stats:   dto.QueueStatsResponse{PendingEntries: 1, TotalDocuments: 1},
	}}
	out, _, err := execute(t, client, "queue", "list", "--search", "User")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if client.calls[0] != "queue:User" {
		t.Fatalf("expected search forwarded, got %v", client.calls)
	}
	for _, want := range []string{"sub-1", "User 1", "pending: 1, documents: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
}

func TestQueueActions(t *testing.T) {
	client := &fakeClient{verified: map[string]string{"sub-1": "12345"}}

	if out, _, err := execute(t, client, "queue", "complete", "sub-1"); err != nil || !strings.Contains(out, "awaiting verification") {
		t.Fatalf("complete: %q %v", out, err)
	}
	if out, _, err := execute(t, client, "queue", "verify", "sub-1", "12345"); err != nil || !strings.Contains(out, "verified") {
		t.Fatalf("verify: %q %v", out, err)
	}
	_, _, err := execute(t, client, "queue", "verify", "sub-1", "99999")
	if err == nil || !strings.Contains(err.Error(), "mismatch") {
		t.Fatalf("expected mismatch error, got %v", err)
	}
	if strings.Contains(err.Error(), "12345") {
		t.Fatalf("mismatch must not reveal the code: %v", err)
	}
	if out, _, err := execute(t, client, "queue", "reject", "sub-2"); err != nil || !strings.Contains(out, "rejected") {
		t.Fatalf("reject: %q %v", out, err)
	}
}

func TestCommandErrorsAreWrapped(t *testing.T) {
	client := &fakeClient{err: domainErrors.ErrNotFound}
	_, _, err := execute(t, client, "queue", "reject", "missing")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected wrapped not found, got %v", err)
	}
	if _, _, err := execute(t, client, "health"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected health error, got %v", err)
	}
}

func TestClientFactoryErrors(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, func(string) (printdesk.Client, error) {
		return nil, errors.New("bad url")
	})
	cmd.SetArgs([]string{"health"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected factory error")
	}

	if _, err := defaultClientFactory("relative"); err == nil {
		t.Fatal("expected relative url to be rejected")
	}
}
