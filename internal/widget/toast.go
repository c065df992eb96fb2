package widget

import "time"

// Variant is the visual style of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

const toastDuration = 3 * time.Second

// Toast is a transient notification for the user.
type Toast struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}

var (
	ToastKeySaved = Toast{
		Title:       "Success! 🎉",
		Description: "Firecrawl API key saved and verified successfully",
		Variant:     VariantDefault,
		Duration:    toastDuration,
	}
	ToastKeyInvalid = Toast{
		Title:       "Invalid API Key",
		Description: "Please check your Firecrawl API key and try again",
		Variant:     VariantDestructive,
		Duration:    toastDuration,
	}
	ToastKeyError = Toast{
		Title:       "Error",
		Description: "Failed to verify API key. Please try again.",
		Variant:     VariantDestructive,
		Duration:    toastDuration,
	}
	ToastKeyRequired = Toast{
		Title:       "API key required",
		Description: "Add your Firecrawl API key to analyze catalog pages",
		Variant:     VariantDefault,
		Duration:    toastDuration,
	}
	ToastCatalogFetched = Toast{
		Title:       "Catalog analyzed",
		Description: "Catalog page fetched successfully",
		Variant:     VariantDefault,
		Duration:    toastDuration,
	}
	ToastCatalogFailed = Toast{
		Title:       "Catalog unavailable",
		Description: "Failed to scrape catalog page",
		Variant:     VariantDestructive,
		Duration:    toastDuration,
	}
	ToastCatalogUnreachable = Toast{
		Title:       "Catalog unavailable",
		Description: "Failed to connect to Firecrawl API",
		Variant:     VariantDestructive,
		Duration:    toastDuration,
	}
)
