package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the applicant-tracking system hosting a job posting.
// Knowing the platform lets extraction target the posting body directly
// instead of scanning generic selectors.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS
	PlatformWorkday Platform = "workday"
	// PlatformAshby is the Ashby ATS
	PlatformAshby Platform = "ashby"
	// PlatformSmartRecruiters is the SmartRecruiters ATS
	PlatformSmartRecruiters Platform = "smartrecruiters"
	// PlatformUnknown is an unrecognized host
	PlatformUnknown Platform = "unknown"
)

// platformHosts maps registrable host suffixes to their platform. Matching is
// on the host suffix, not a substring scan, so "notlever.co.evil.com" never
// classifies as Lever.
var platformHosts = []struct {
	suffix   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
	{"smartrecruiters.com", PlatformSmartRecruiters},
}

// DetectPlatform identifies the job board platform from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())
	for _, entry := range platformHosts {
		if host == entry.suffix || strings.HasSuffix(host, "."+entry.suffix) {
			return entry.platform
		}
	}
	return PlatformUnknown
}

// platformContent lists posting-body selectors per platform, most specific
// first.
var platformContent = map[Platform][]string{
	PlatformGreenhouse: {
		".job__description.body",
		".job__description",
		".job-description__content",
		"#content",
		".job-post-container",
	},
	PlatformLever: {
		".posting-page",
		".section-wrapper.page-full-width",
		".posting-description",
		".content",
	},
	PlatformWorkday: {
		"[data-automation-id='jobDescription']",
		".WDXK",
		".gwt-HTML",
		".job-description",
	},
	PlatformAshby: {
		"[class*='_descriptionText']",
		".ashby-job-posting-brief-description",
		"#overview",
	},
	PlatformSmartRecruiters: {
		".job-sections",
		"[itemprop='description']",
		".jobad-main",
	},
}

// commonNoise removes chrome that every ATS wraps around the posting body:
// application forms, EEO disclosures, share widgets, and consent banners.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

var platformNoise = map[Platform][]string{
	PlatformGreenhouse: {
		".application--wrapper",
		".voluntary-self-id",
		".voluntary-self-id-wrapper",
		"#usa_self_id_section",
		".post-apply",
	},
	PlatformLever: {
		".apply-section",
		".lever-application-form",
		".posting-apply",
	},
	PlatformWorkday: {
		"[data-automation-id='applyButton']",
		".application-section",
		".WDAF",
	},
	PlatformAshby: {
		".ashby-application-form-container",
		"[class*='_applicationForm']",
	},
	PlatformSmartRecruiters: {
		".st-apply",
		"#st-apply",
		".job-share",
	},
}

// PlatformContentSelectors returns content selectors tuned for the platform,
// falling back to the generic job-posting selectors for unknown hosts.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContent[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the noise exclusions for the platform, the
// common set plus any platform-specific additions.
func PlatformNoiseSelectors(platform Platform) []string {
	return append(append([]string(nil), commonNoise...), platformNoise[platform]...)
}
