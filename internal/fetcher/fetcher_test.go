package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>Account Verification</title><script>var x = "hidden";</script></head>
<body>
<h1>Verify your account now</h1>
<p>Your session will expire soon.</p>
<form action="/submit" method="POST">
  <input type="text" name="username" placeholder="Email address" required>
  <input type="password" name="password">
  <textarea name="notes"></textarea>
</form>
<a href="https://example.com/next">continue</a>
<a href="/local">local</a>
</body>
</html>`

func TestFetchExtractsContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("expected browser user agent, got %q", ua)
		}
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	content, err := New().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if content.Title != "Account Verification" {
		t.Errorf("title = %q, want Account Verification", content.Title)
	}
	if !strings.Contains(content.Text, "Verify your account now") {
		t.Errorf("text missing heading: %q", content.Text)
	}
	if strings.Contains(content.Text, "hidden") {
		t.Error("script content leaked into visible text")
	}

	if len(content.Forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(content.Forms))
	}
	form := content.Forms[0]
	if form.Action != "/submit" || form.Method != "post" {
		t.Errorf("unexpected form %+v", form)
	}
	if len(form.Inputs) != 3 {
		t.Fatalf("expected 3 inputs, got %d", len(form.Inputs))
	}
	if form.Inputs[0].Name != "username" || form.Inputs[0].Placeholder != "Email address" || !form.Inputs[0].Required {
		t.Errorf("unexpected first input %+v", form.Inputs[0])
	}
	if form.Inputs[1].Type != "password" {
		t.Errorf("expected password input, got %+v", form.Inputs[1])
	}
	if form.Inputs[2].Type != "text" {
		t.Errorf("expected textarea to default to text type, got %+v", form.Inputs[2])
	}

	if len(content.Links) != 2 {
		t.Fatalf("expected 2 links, got %v", content.Links)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestFetchConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestFetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	content, err := New().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if content.Title != "" || content.Text != "" || len(content.Forms) != 0 {
		t.Errorf("expected empty content, got %+v", content)
	}
}
