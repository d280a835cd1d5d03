package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ONSdigital/dp-acled-hdx-publisher/config"
	"github.com/ONSdigital/dp-acled-hdx-publisher/service"
	"github.com/ONSdigital/dp-acled-hdx-publisher/service/mock"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/http"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx           = context.Background()
	testBuildTime = "BuildTime"
	testGitCommit = "GitCommit"
	testVersion   = "Version"
	errServer     = errors.New("HTTP Server error")
	errHealth     = errors.New("healthCheck error")
	errAddCheck   = errors.New("healthcheck add check error")
)

func newHealthCheck() *mock.HealthCheckerMock {
	return &mock.HealthCheckerMock{
		AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		StartFunc:    func(ctx context.Context) {},
		StopFunc:     func() {},
		HandlerFunc: func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}
}

func newInitialiser(hc service.HealthChecker, server service.HTTPServer) *mock.InitialiserMock {
	return &mock.InitialiserMock{
		DoGetHTTPClientFunc: func(cfg *config.Config) service.HTTPClient {
			return dphttp.NewClient()
		},
		DoGetHealthCheckFunc: func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
			return hc, nil
		},
		DoGetHTTPServerFunc: func(bindAddr string, router http.Handler) service.HTTPServer {
			return server
		},
	}
}

func TestRun(t *testing.T) {
	Convey("Having a set of mocked dependencies", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)
		cfg.ServiceAuthToken = "secret"

		hcMock := newHealthCheck()
		serverWg := make(chan struct{})
		serverMock := &mock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				close(serverWg)
				return nil
			},
		}
		initMock := newInitialiser(hcMock, serverMock)
		svcErrors := make(chan error, 1)

		Convey("Given that all dependencies are successfully initialised", func() {
			svcList := service.NewServiceList(initMock)
			svc, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run succeeds and all the flags are set", func() {
				So(err, ShouldBeNil)
				So(svcList.HealthCheck, ShouldBeTrue)
				So(svc.Publisher, ShouldNotBeNil)
				So(svc.CatalogClient.URL(), ShouldEqual, cfg.HDXURL)
			})

			Convey("And the checkers are registered and the healthcheck and http server started", func() {
				So(hcMock.AddCheckCalls(), ShouldHaveLength, 1)
				So(hcMock.AddCheckCalls()[0].Name, ShouldEqual, "HDX catalog")
				So(initMock.DoGetHTTPServerCalls(), ShouldHaveLength, 1)
				So(initMock.DoGetHTTPServerCalls()[0].BindAddr, ShouldEqual, ":28300")
				So(initMock.DoGetHTTPClientCalls(), ShouldHaveLength, 2)
				So(initMock.DoGetHTTPClientCalls()[0].Cfg, ShouldEqual, cfg)
				So(hcMock.StartCalls(), ShouldHaveLength, 1)
				<-serverWg
				So(serverMock.ListenAndServeCalls(), ShouldHaveLength, 1)
			})

			Convey("And the router serves the health endpoint", func() {
				router := initMock.DoGetHTTPServerCalls()[0].Router
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
				So(w.Code, ShouldEqual, http.StatusOK)
				So(hcMock.HandlerCalls(), ShouldHaveLength, 1)
			})

			Convey("And the publish endpoints require the service auth token", func() {
				router := initMock.DoGetHTTPServerCalls()[0].Router
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest("POST", "/publish", nil))
				So(w.Code, ShouldEqual, http.StatusUnauthorized)
			})
		})

		Convey("Given that initialising the healthcheck returns an error", func() {
			initMock.DoGetHealthCheckFunc = func(cfg *config.Config, buildTime, gitCommit, version string) (service.HealthChecker, error) {
				return nil, errHealth
			}
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the flag is not set", func() {
				So(err, ShouldResemble, errHealth)
				So(svcList.HealthCheck, ShouldBeFalse)
				So(initMock.DoGetHTTPServerCalls(), ShouldBeEmpty)
			})
		})

		Convey("Given that the checker cannot be registered", func() {
			hcMock.AddCheckFunc = func(name string, checker healthcheck.Checker) error { return errAddCheck }
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails and the server is not started", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unable to register checkers")
				So(hcMock.StartCalls(), ShouldBeEmpty)
				So(initMock.DoGetHTTPServerCalls(), ShouldBeEmpty)
			})
		})

		Convey("Given that the http server fails", func() {
			serverMock.ListenAndServeFunc = func() error { return errServer }
			svcList := service.NewServiceList(initMock)
			_, err := service.Run(ctx, cfg, svcList, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then the error is reported on the error channel", func() {
				So(err, ShouldBeNil)
				sErr := <-svcErrors
				So(sErr.Error(), ShouldEqual, "failure in http listen and serve: HTTP Server error")
			})
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Having a correctly initialised service", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)
		cfg.GracefulShutdownTimeout = 100 * time.Millisecond

		hcMock := newHealthCheck()
		serverMock := &mock.HTTPServerMock{
			ListenAndServeFunc: func() error { return nil },
			ShutdownFunc:       func(ctx context.Context) error { return nil },
		}
		initMock := newInitialiser(hcMock, serverMock)

		svc, err := service.Run(ctx, cfg, service.NewServiceList(initMock), testBuildTime, testGitCommit, testVersion, make(chan error, 1))
		So(err, ShouldBeNil)

		Convey("Closing the service stops the healthcheck and the http server", func() {
			err := svc.Close(ctx)
			So(err, ShouldBeNil)
			So(hcMock.StopCalls(), ShouldHaveLength, 1)
			So(serverMock.ShutdownCalls(), ShouldHaveLength, 1)
		})

		Convey("If the http server fails to shut down, Close returns an error", func() {
			serverMock.ShutdownFunc = func(ctx context.Context) error { return errServer }
			err := svc.Close(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "failed to shutdown gracefully")
		})

		Convey("If the shutdown takes longer than the timeout, Close returns a timeout error", func() {
			serverMock.ShutdownFunc = func(ctx context.Context) error {
				time.Sleep(300 * time.Millisecond)
				return nil
			}
			err := svc.Close(ctx)
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})
}

func TestGeneratorSettings(t *testing.T) {
	Convey("The generator settings combine the environment and the project configuration", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)
		cfg.HXLProxyURL = "https://proxy.example/data.csv"
		project, err := config.LoadProject()
		So(err, ShouldBeNil)

		settings := service.GeneratorSettings(cfg, project)
		So(settings.OwnerOrg, ShouldEqual, cfg.HDXOwnerOrg)
		So(settings.Maintainer, ShouldEqual, cfg.HDXMaintainer)
		So(settings.Tags, ShouldResemble, project.Dataset.Tags)
		So(settings.Proxy.URL, ShouldEqual, "https://proxy.example/data.csv")
		So(settings.Proxy.Taggers, ShouldHaveLength, 19)
		So(project.HXLProxy.URL, ShouldBeEmpty)
	})
}
