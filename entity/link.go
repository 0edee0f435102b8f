package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"hackportal-backend/errs"
)

var httpURL = regexp.MustCompile(`(?i)^(https?)://[\w.-]+(?::[0-9]+)?(?:/[\w\-._~:/?#[\]@!$&'()*+,;=%]*)?$`)

// IsHTTPURL reports whether s, once trimmed, is an http or https URL.
func IsHTTPURL(s string) bool {
	return httpURL.MatchString(strings.TrimSpace(s))
}

type LinkCategory string

const (
	CategoryDemo       LinkCategory = "demo"
	CategorySlides     LinkCategory = "slides"
	CategoryRepository LinkCategory = "repository"
	CategoryVideo      LinkCategory = "video"
	CategoryOther      LinkCategory = "other"
)

// ArtifactLink is one platform -> url entry of a submission. On the wire and
// in storage it is a single-key object, {"<platform>": "<url>"}.
type ArtifactLink struct {
	Platform string
	URL      string
}

func Link(platform, url string) ArtifactLink {
	return ArtifactLink{Platform: platform, URL: url}
}

// Category is used for display only. Unknown platforms are CategoryOther.
func (l ArtifactLink) Category() LinkCategory {
	key := strings.ToLower(l.Platform)
	switch {
	case key == "demo":
		return CategoryDemo
	case strings.Contains(key, "ppt"), strings.Contains(key, "presentation"):
		return CategorySlides
	case strings.Contains(key, "repo"), key == "github":
		return CategoryRepository
	case strings.Contains(key, "video"):
		return CategoryVideo
	}
	return CategoryOther
}

// Normalize trims the entry and checks it. The returned link is what gets
// stored.
func (l ArtifactLink) Normalize() (ArtifactLink, error) {
	n := ArtifactLink{
		Platform: strings.TrimSpace(l.Platform),
		URL:      strings.TrimSpace(l.URL),
	}

	if n.Platform == "" {
		return ArtifactLink{}, errs.Invalid("artifact_links", "platform name is required")
	}
	if !httpURL.MatchString(n.URL) {
		return ArtifactLink{}, errs.Invalid("artifact_links", "%q is not an http/https URL", l.URL)
	}

	return n, nil
}

func (l ArtifactLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{l.Platform: l.URL})
}

func (l *ArtifactLink) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return errs.Invalid("artifact_links", "entry must be an object with exactly one key")
	}
	if len(m) != 1 {
		return errs.Invalid("artifact_links", "entry must have exactly one key, got %d", len(m))
	}

	for k, v := range m {
		var url string
		if err := json.Unmarshal(v, &url); err != nil {
			return errs.Invalid("artifact_links", "value of %q must be a string", k)
		}
		l.Platform = k
		l.URL = url
	}

	return nil
}

func (l ArtifactLink) MarshalBSON() ([]byte, error) {
	return bson.Marshal(bson.D{{Key: l.Platform, Value: l.URL}})
}

// UnmarshalBSON ignores an _id key, which older documents carry on every
// array element.
func (l *ArtifactLink) UnmarshalBSON(data []byte) error {
	var d bson.D
	if err := bson.Unmarshal(data, &d); err != nil {
		return err
	}

	found := false
	for _, e := range d {
		if e.Key == "_id" {
			continue
		}
		if found {
			return fmt.Errorf("artifact link has more than one key")
		}
		url, ok := e.Value.(string)
		if !ok {
			return fmt.Errorf("artifact link %q is not a string", e.Key)
		}
		l.Platform = e.Key
		l.URL = url
		found = true
	}
	if !found {
		return fmt.Errorf("artifact link has no key")
	}

	return nil
}
