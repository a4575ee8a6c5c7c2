package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/httpclient"
)

// FetchImageAsDataURL downloads a remote image and inlines it as a
// base64 data URL. Strings that are already data URLs pass through.
func FetchImageAsDataURL(ctx context.Context, imageURL string) (string, error) {
	if strings.HasPrefix(imageURL, "data:") {
		return imageURL, nil
	}

	statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    imageURL,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", err
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch returned status %d", statusCode)
	}

	contentType := http.DetectContentType(body)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("fetched content is not an image: %s", contentType)
	}

	encoded := base64.StdEncoding.EncodeToString(body)

	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
}
