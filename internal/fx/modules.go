package fx

import (
	"log"

	"searchlens/internal/config"
	"searchlens/internal/core"
	"searchlens/internal/exa"
	"searchlens/internal/scraper"
	"searchlens/internal/search"
	"searchlens/internal/serpapi"

	"go.uber.org/fx"
)

// ConfigModule provides application configuration
var ConfigModule = fx.Module("config",
	fx.Provide(config.Load),
)

// ScraperModule provides page content extraction
var ScraperModule = fx.Module("scraper",
	fx.Provide(NewScraper),
)

// SearchModule provides the two search providers and the registry
var SearchModule = fx.Module("search",
	fx.Provide(
		NewExaClient,
		NewNeuralProvider,
		NewTraditionalProvider,
		NewSearchRegistry,
	),
)

// CoreModule provides the comparison core
var CoreModule = fx.Module("core",
	fx.Provide(NewCompareCore),
)

// NewScraper creates the goquery scraper
func NewScraper() *scraper.Scraper {
	s := scraper.NewScraper()
	log.Printf("[FX] Scraper initialized")
	return s
}

// NewExaClient creates the Exa API client. A missing EXA_API_KEY aborts
// startup here, before any request is served.
func NewExaClient(cfg config.Config) (*exa.Client, error) {
	client, err := exa.NewClient(cfg.ExaAPIKey)
	if err != nil {
		return nil, err
	}
	log.Printf("[FX] ExaClient initialized")
	return client, nil
}

// NeuralProvider is the named neural-search provider
type NeuralProvider struct {
	fx.Out
	Provider search.Provider `name:"neural"`
}

// TraditionalProvider is the named traditional-search provider
type TraditionalProvider struct {
	fx.Out
	Provider search.Provider `name:"traditional"`
}

// NewNeuralProvider exposes the Exa client as the neural panel's provider
func NewNeuralProvider(client *exa.Client) NeuralProvider {
	return NeuralProvider{Provider: client}
}

// NewTraditionalProvider picks the traditional panel's provider: SerpApi
// when a key is configured, the deterministic mock otherwise.
func NewTraditionalProvider(cfg config.Config) (TraditionalProvider, error) {
	if cfg.SerpAPIKey != "" {
		client, err := serpapi.NewClient(cfg.SerpAPIKey)
		if err != nil {
			return TraditionalProvider{}, err
		}
		log.Printf("[FX] TraditionalProvider initialized (SerpApi)")
		return TraditionalProvider{Provider: client}, nil
	}

	log.Printf("[FX] TraditionalProvider initialized (mock — set SERPAPI_API_KEY for live results)")
	return TraditionalProvider{Provider: search.NewMockProvider()}, nil
}

// RegistryParams groups the named providers for the registry
type RegistryParams struct {
	fx.In
	Neural      search.Provider `name:"neural"`
	Traditional search.Provider `name:"traditional"`
}

// NewSearchRegistry creates the registry with both providers registered
func NewSearchRegistry(p RegistryParams) *search.Registry {
	registry := search.NewRegistry()
	registry.Register(p.Neural)
	registry.Register(p.Traditional)
	log.Printf("[FX] SearchRegistry initialized with %d providers", registry.Count())
	return registry
}

// CompareCoreParams groups dependencies for the comparison core
type CompareCoreParams struct {
	fx.In
	Neural      search.Provider `name:"neural"`
	Traditional search.Provider `name:"traditional"`
	Exa         *exa.Client
	Config      config.Config
}

// NewCompareCore creates the comparison core
func NewCompareCore(p CompareCoreParams) *core.CompareCore {
	c := core.NewCompareCore(p.Neural, p.Traditional, p.Exa, p.Config.SearchTimeout)
	log.Printf("[FX] CompareCore initialized (timeout %s)", p.Config.SearchTimeout)
	return c
}
