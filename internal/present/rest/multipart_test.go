package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for name, content := range files {
		fw, err := w.CreateFormFile(name, name+".pdf")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.Copy(fw, bytes.NewReader(content)); err != nil {
			t.Fatalf("copy file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func doMultipart(t *testing.T, e *echo.Echo, token, path string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	return res
}

func seedParishID(t *testing.T, e *echo.Echo, token string) int64 {
	t.Helper()
	diocese := decode[domain.Diocese](t, doJSON(t, e, token, http.MethodPost, "/api/dioceses", sacristy.CreateDioceseRequest{Name: "Holy Cross"}))
	parish := decode[domain.Parish](t, doJSON(t, e, token, http.MethodPost, fmt.Sprintf("/api/dioceses/%d/parishes", diocese.ID), sacristy.CreateParishRequest{ParishName: "St Peter"}))
	return parish.ID
}

func TestCreateExternalBaptismMultipart(t *testing.T) {
	e, token := newTestServer(t)
	parishID := seedParishID(t, e, token)

	res := doMultipart(t, e, token, "/api/baptisms",
		map[string]string{
			"parishId":    fmt.Sprint(parishID),
			"baptismName": "Jane",
			"surname":     "Doe",
			"fathersName": "John",
			"mothersName": "Mary",
		},
		map[string][]byte{"certificate": []byte("%PDF scanned certificate")},
	)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}
	created := decode[domain.Baptism](t, res)
	if created.Source != domain.SourceExternal || created.CertificatePath == "" {
		t.Fatalf("unexpected baptism %+v", created)
	}

	// the uploaded bytes come back through the retrieval endpoint
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/baptisms/%d/external-certificate", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("retrieval: expected 200 got %d", rec.Code)
	}
	if rec.Body.String() != "%PDF scanned certificate" {
		t.Fatalf("unexpected certificate payload %q", rec.Body.String())
	}
}

func TestCreateExternalBaptismMissingFile(t *testing.T) {
	e, token := newTestServer(t)
	parishID := seedParishID(t, e, token)

	res := doMultipart(t, e, token, "/api/baptisms",
		map[string]string{
			"parishId":    fmt.Sprint(parishID),
			"baptismName": "Jane",
			"surname":     "Doe",
			"fathersName": "John",
			"mothersName": "Mary",
		},
		nil,
	)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", res.Code, res.Body.String())
	}
}

func TestCreateCommunionWithExternalBaptismMultipart(t *testing.T) {
	e, token := newTestServer(t)
	parishID := seedParishID(t, e, token)

	res := doMultipart(t, e, token, "/api/communions",
		map[string]string{
			"parishId":          fmt.Sprint(parishID),
			"communionDate":     "2024-06-01",
			"officiatingPriest": "Fr. X",
			"parish":            "Our Lady",
			"baptismName":       "Jane",
			"surname":           "Doe",
			"fathersName":       "John",
			"mothersName":       "Mary",
		},
		map[string][]byte{
			"baptismCertificate":   []byte("%PDF baptism"),
			"communionCertificate": []byte("%PDF communion"),
		},
	)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}
	created := decode[domain.Communion](t, res)
	if created.Source != domain.SourceExternal {
		t.Fatalf("expected external communion, got %+v", created)
	}
	if created.BaptismCertificatePath == "" || created.CommunionCertificatePath == "" {
		t.Fatalf("expected both certificate paths, got %+v", created)
	}
}

func TestUploadMarriageCertificate(t *testing.T) {
	e, token := newTestServer(t)
	parishID := seedParishID(t, e, token)

	res := doMultipart(t, e, token, fmt.Sprintf("/api/parishes/%d/marriages/upload-certificate", parishID),
		map[string]string{"role": "bride", "kind": "confirmation"},
		map[string][]byte{"certificate": []byte("%PDF confirmation")},
	)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}
	uploaded := decode[sacristy.UploadedCertificate](t, res)
	if uploaded.Path == "" {
		t.Fatalf("expected stored path, got %+v", uploaded)
	}
}
