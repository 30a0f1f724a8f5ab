// response/body.go
package response

import (
	"io"
	"net/http"
)

// ReadBody reads the whole response body as text and closes it. The body is
// returned untouched whatever the status code.
func ReadBody(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(bodyBytes), nil
}
