package refdata

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fetchTimeout bounds how long a remote overlay may take.
const fetchTimeout = 30 * time.Second

// overlay mirrors Dataset but keeps each region undecoded so it can be applied on top of the
// built-in region of the same name.
type overlay struct {
	Regions      map[string]yaml.Node `yaml:"regions"`
	Coefficients yaml.Node            `yaml:"coefficients"`
}

// Load reads a reference-data overlay from a file path or http(s) URL and applies it on top
// of the built-in data. Tables absent from the overlay keep their built-in values. An empty
// source returns the built-in data. The result is validated.
func Load(source string) (d *Dataset, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	d, err = LoadWithContext(ctx, source)
	return d, err
}

// LoadWithContext is Load with caller-controlled cancellation of remote fetches.
func LoadWithContext(ctx context.Context, source string) (d *Dataset, err error) {
	d = Builtin()

	if source != "" {
		var data []byte
		data, err = Fetch(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch reference data: %s", source)
			return d, err
		}

		err = Apply(d, data)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse reference data: %s", source)
			return d, err
		}
	}

	err = d.Validate()
	if err != nil {
		err = errors.Wrap(err, "reference data validation failed")
		return d, err
	}

	return d, err
}

// Apply decodes a YAML (or JSON) overlay into d. Regions named in the overlay are decoded on
// top of the existing region of that name; unknown names start from an empty region.
func Apply(d *Dataset, data []byte) (err error) {
	var o overlay
	err = yaml.Unmarshal(data, &o)
	if err != nil {
		err = errors.Wrap(err, "failed to unmarshal overlay")
		return err
	}

	if d.Regions == nil {
		d.Regions = make(map[string]*Region)
	}

	for key, node := range o.Regions {
		region, ok := d.Regions[key]
		if !ok || region == nil {
			region = &Region{}
		}

		n := node
		err = n.Decode(region)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode region %s", key)
			return err
		}
		d.Regions[key] = region
	}

	if !o.Coefficients.IsZero() {
		err = o.Coefficients.Decode(&d.Coefficients)
		if err != nil {
			err = errors.Wrap(err, "failed to decode coefficients")
			return err
		}
	}

	return err
}

// Marshal renders d as YAML, the format Load accepts.
func Marshal(d *Dataset) (data []byte, err error) {
	data, err = yaml.Marshal(d)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal reference data")
		return data, err
	}
	return data, err
}

// Fetch retrieves raw bytes from a file path or an http(s) URL.
func Fetch(ctx context.Context, source string) (data []byte, err error) {
	parsedURL, urlErr := url.Parse(source)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		data, err = fetchFromURL(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch from URL: %s", source)
			return data, err
		}
		return data, err
	}

	data, err = fetchFromFile(source)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch from file: %s", source)
		return data, err
	}

	return data, err
}

func fetchFromFile(path string) (data []byte, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("file is empty")
		return data, err
	}

	return data, err
}

func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "lifesim/1.0")

	client := &http.Client{
		Timeout: fetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("fetched content is empty")
		return data, err
	}

	return data, err
}
