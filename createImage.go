// createImage.go
package sparkline

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"strings"

	"github.com/chromedp/chromedp"
)

// GenerateImage renders the sparkline preview page in headless Chrome and
// writes a screenshot of the mounted plot as PNG or JPEG.
func GenerateImage(ds *Dataset, req PlotRequest, format string, outputWriter io.Writer) error {
	// 1. Generate the harness page first.
	htmlString, err := GenerateHTML(ds, req)
	if err != nil {
		return fmt.Errorf("failed to generate intermediate HTML: %w", err)
	}

	// 2. Load it via a base64 data URI so no temp file is needed.
	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlString))
	log.Println("Created data URI for preview page.")

	// 3. Setup chromedp.
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	// 4. Navigate and screenshot the mounted plot. Plotly mounts
	// asynchronously, so wait for its root node rather than the container.
	var screenshotBuf []byte

	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`#sparkline .js-plotly-plot`, chromedp.ByQuery),
		chromedp.Screenshot(`#sparkline`, &screenshotBuf, chromedp.ByQuery),
	}

	log.Println("Running chromedp tasks (navigate and screenshot)...")
	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	log.Println("Chromedp tasks completed successfully.")

	if len(screenshotBuf) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	// 5. Process output.
	screenshotReader := bytes.NewReader(screenshotBuf)

	switch format {
	case "png":
		// Screenshot is already PNG, just copy it.
		if _, err := io.Copy(outputWriter, screenshotReader); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, errPng := png.Decode(screenshotReader)
		if errPng != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", errPng)
		}
		jpegOpts := &jpeg.Options{Quality: 90}
		if err := jpeg.Encode(outputWriter, img, jpegOpts); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("internal error: unsupported image format %q with chromedp", format)
	}

	log.Printf("Successfully encoded %s image using chromedp.", strings.ToUpper(format))
	return nil
}
