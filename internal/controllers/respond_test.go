package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

func TestHandleErrorLogsInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	handleError(c, errors.New("connection reset by peer"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("connection reset by peer")) {
		t.Fatalf("internal error not logged: %q", buf.String())
	}
}
