package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-acled-hdx-publisher/acled"
	"github.com/ONSdigital/dp-acled-hdx-publisher/catalog"
	"github.com/ONSdigital/dp-acled-hdx-publisher/config"
	"github.com/ONSdigital/dp-acled-hdx-publisher/handlers"
	"github.com/ONSdigital/dp-acled-hdx-publisher/publisher"
	"github.com/ONSdigital/dp-acled-hdx-publisher/tabular"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Service contains all the configs, server and clients to run the ACLED HDX publisher
type Service struct {
	Config        *config.Config
	HealthCheck   HealthChecker
	Server        HTTPServer
	CatalogClient *catalog.Client
	Publisher     *publisher.Publisher
	ServiceList   *ExternalServiceList
}

// Run the service
func Run(ctx context.Context, cfg *config.Config, serviceList *ExternalServiceList, buildTime, gitCommit, version string, svcErrors chan error) (svc *Service, err error) {
	log.Info(ctx, "running service")

	// Initialise Service struct
	svc = &Service{
		Config:      cfg,
		ServiceList: serviceList,
	}

	project, err := config.LoadProject()
	if err != nil {
		return nil, err
	}

	// Initialise clients
	// the catalog gets its own client as it excludes its write paths from retries
	downloader := tabular.NewDownloader(serviceList.GetHTTPClient(cfg))
	svc.CatalogClient = catalog.New(cfg.HDXURL, cfg.HDXAPIKey, serviceList.GetHTTPClient(cfg))
	generator := acled.NewGenerator(GeneratorSettings(cfg, project), downloader)
	svc.Publisher = publisher.New(svc.CatalogClient, generator, downloader, cfg.ACLEDCountriesURL, cfg.ACLEDEventsURL, cfg.PublishConcurrency)

	// Get healthcheck with checkers
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Fatal(ctx, "failed to create health check", err)
		return nil, err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to register checkers")
	}

	if cfg.ServiceAuthToken == "" {
		log.Warn(ctx, "SERVICE_AUTH_TOKEN is not set, publish endpoints are unprotected")
	}

	svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, svc.router())

	// Start Healthcheck and HTTP Server
	svc.HealthCheck.Start(ctx)
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return svc, nil
}

func (svc *Service) router() *mux.Router {
	hdxURL := svc.CatalogClient.URL()

	router := mux.NewRouter()
	router.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)

	router.StrictSlash(true).Path("/countries").Methods(http.MethodGet).HandlerFunc(handlers.Countries(svc.Publisher))
	router.StrictSlash(true).Path("/countries/{iso3}").Methods(http.MethodGet).HandlerFunc(handlers.Country(svc.Publisher))

	publish := router.NewRoute().Subrouter()
	publish.Use(handlers.RequireServiceAuth(svc.Config.ServiceAuthToken))
	publish.StrictSlash(true).Path("/publish").Methods(http.MethodPost).HandlerFunc(handlers.Publish(svc.Publisher, hdxURL))
	publish.StrictSlash(true).Path("/countries/{iso3}/publish").Methods(http.MethodPost).HandlerFunc(handlers.PublishCountry(svc.Publisher, hdxURL))

	return router
}

// GeneratorSettings combines the environment and the project configuration into
// the settings of the dataset generator
func GeneratorSettings(cfg *config.Config, project *config.Project) acled.Settings {
	proxy := project.HXLProxy
	proxy.URL = cfg.HXLProxyURL

	return acled.Settings{
		OwnerOrg:            cfg.HDXOwnerOrg,
		Maintainer:          cfg.HDXMaintainer,
		UpdateFrequency:     project.Dataset.UpdateFrequency,
		Tags:                project.Dataset.Tags,
		ResourceDescription: project.Resource.Description,
		ResourceFormat:      project.Resource.Format,
		DashboardURL:        project.Showcase.DashboardURL,
		ImageURL:            project.Showcase.ImageURL,
		Proxy:               proxy,
	}
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.ServiceList.HealthCheck {
			svc.HealthCheck.Stop()
		}

		// stop any incoming requests
		if err := svc.Server.Shutdown(ctx); err != nil {
			log.Error(ctx, "failed to shutdown http server", err)
			hasShutdownError = true
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	// timeout expired
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	if err = svc.HealthCheck.AddCheck("HDX catalog", svc.CatalogClient.Checker); err != nil {
		log.Error(ctx, "failed to add hdx catalog checker", err)
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
