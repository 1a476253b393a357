package fetch

import (
	"net/url"
	"strings"
)

// Platform is a job board with a known page layout.
type Platform string

const (
	PlatformWelcomeToTheJungle Platform = "welcometothejungle"
	PlatformIndeed             Platform = "indeed"
	PlatformLinkedIn           Platform = "linkedin"
	PlatformApec               Platform = "apec"
	PlatformHelloWork          Platform = "hellowork"
	PlatformLever              Platform = "lever"
	PlatformGreenhouse         Platform = "greenhouse"
	PlatformUnknown            Platform = "unknown"
)

var platformHosts = []struct {
	suffix   string
	platform Platform
}{
	{"welcometothejungle.com", PlatformWelcomeToTheJungle},
	{"indeed.com", PlatformIndeed},
	{"indeed.fr", PlatformIndeed},
	{"linkedin.com", PlatformLinkedIn},
	{"apec.fr", PlatformApec},
	{"hellowork.com", PlatformHelloWork},
	{"lever.co", PlatformLever},
	{"greenhouse.io", PlatformGreenhouse},
}

// DetectPlatform identifies the job board hosting rawURL.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, h := range platformHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.platform
		}
	}
	return PlatformUnknown
}

// ContentSelectors returns the description selectors for platform, most
// specific first.
func ContentSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformWelcomeToTheJungle:
		specific = []string{"[data-testid='job-section-description']", "[data-testid='job-section-experience']"}
	case PlatformIndeed:
		specific = []string{"#jobDescriptionText", ".jobsearch-JobComponent-description"}
	case PlatformLinkedIn:
		specific = []string{".show-more-less-html__markup", ".description__text"}
	case PlatformApec:
		specific = []string{".details-offer", ".container-offer"}
	case PlatformHelloWork:
		specific = []string{"[data-id-storage-target='item.description']", ".tw-typo-long-m"}
	case PlatformLever:
		specific = []string{".posting-page", ".posting-description"}
	case PlatformGreenhouse:
		specific = []string{".job__description", "#content"}
	}
	return append(specific, OfferSelectors()...)
}

// NoiseSelectors returns elements to strip for platform: application forms,
// share widgets and consent banners.
func NoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".application-form",
		".apply-button-container",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
		"#didomi-host",
		"#axeptio_overlay",
	}
	switch platform {
	case PlatformIndeed:
		return append(common, "#jobsearch-ViewJobButtons-container", ".jobsearch-JobMetadataFooter")
	case PlatformLinkedIn:
		return append(common, ".top-card-layout__cta-container", ".similar-jobs")
	case PlatformWelcomeToTheJungle:
		return append(common, "[data-testid='job-apply-button']")
	case PlatformLever:
		return append(common, ".posting-apply", ".lever-application-form")
	default:
		return common
	}
}
