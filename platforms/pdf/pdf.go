package pdf

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ipriyanshu25/infuencer/config"
)

var (
	ErrHTML     = errors.New("Invalid HTML")
	ErrEndpoint = errors.New("No PDF endpoint configured")
)

// ConvertHTMLToPDF streams a rendered PDF of the given document to the
// sink. In sandbox mode the HTML is written through untouched so tests
// and local runs never leave the process.
func ConvertHTMLToPDF(html string, res io.Writer, cfg *config.Config) (err error) {
	if html == "" {
		return ErrHTML
	}

	if cfg.Sandbox {
		_, err = io.WriteString(res, html)
		return
	}

	if cfg.PDFEndpoint == "" {
		return ErrEndpoint
	}

	form := url.Values{}
	form.Add("document_html", html)

	name := fmt.Sprintf("contract_%s.pdf", strconv.Itoa(int(time.Now().Unix())))
	form.Add("document_name", name)

	req, err := http.NewRequest("POST", cfg.PDFEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	_, err = io.Copy(res, resp.Body)
	return
}
