package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ONSdigital/dp-acled-hdx-publisher/mapper"
	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/dp-acled-hdx-publisher/publisher"
	"github.com/ONSdigital/dp-api-clients-go/headers"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks_handlers.go . Publisher

const bearerPrefix = "Bearer "

// Publisher is an interface with the methods required to preview and publish countries
type Publisher interface {
	Countries(ctx context.Context) ([]models.Country, error)
	Preview(ctx context.Context, iso3 string) (*publisher.Preview, error)
	PublishCountry(ctx context.Context, iso3 string) (*publisher.Outcome, error)
	Run(ctx context.Context) (*publisher.Report, error)
}

// ClientError is an interface that can be used to retrieve the status code if a client has errored
type ClientError interface {
	error
	Code() int
}

func statusCode(err error) int {
	var cliErr ClientError
	if errors.Is(err, publisher.ErrCountryNotFound) {
		return http.StatusNotFound
	}
	if errors.As(err, &cliErr) && cliErr.Code() == http.StatusNotFound {
		return cliErr.Code()
	}
	return http.StatusInternalServerError
}

func setStatusCode(req *http.Request, w http.ResponseWriter, err error) {
	status := statusCode(err)
	log.Error(req.Context(), "setting response status", err, log.Data{"status": status})
	w.WriteHeader(status)
}

func writeJSON(req *http.Request, w http.ResponseWriter, status int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Error(req.Context(), "error marshalling response", err)
		setStatusCode(req, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		log.Error(req.Context(), "error writing response", err)
	}
}

// Countries lists the countries that can be published
func Countries(pub Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		countries, err := pub.Countries(ctx)
		if err != nil {
			log.Error(ctx, "error resolving countries", err)
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, http.StatusOK, mapper.CountryList(countries))
	}
}

// Country previews the dataset and showcase of a country without publishing
// them. A country without events has no content.
func Country(pub Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		iso3 := mux.Vars(req)["iso3"]
		logData := log.Data{"iso3": iso3}

		preview, err := pub.Preview(ctx, iso3)
		if err != nil {
			log.Error(ctx, "error generating country preview", err, logData)
			setStatusCode(req, w, err)
			return
		}

		if preview.Dataset == nil {
			log.Info(ctx, "country has no events", logData)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(req, w, http.StatusOK, preview)
	}
}

// Publish publishes every country. hdxURL is the catalog the response links to.
// A failed run still reports the countries published before the failure.
func Publish(pub Publisher, hdxURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		report, err := pub.Run(ctx)
		if err != nil {
			if report == nil {
				log.Error(ctx, "error publishing countries", err)
				setStatusCode(req, w, err)
				return
			}

			status := statusCode(err)
			log.Error(ctx, "error publishing countries", err, log.Data{"published_before_failure": report.Published(), "status": status})
			resp := mapper.PublishReport(hdxURL, report)
			resp.Error = err.Error()
			writeJSON(req, w, status, resp)
			return
		}

		writeJSON(req, w, http.StatusOK, mapper.PublishReport(hdxURL, report))
	}
}

// PublishCountry publishes a single country
func PublishCountry(pub Publisher, hdxURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		iso3 := mux.Vars(req)["iso3"]
		logData := log.Data{"iso3": iso3}

		outcome, err := pub.PublishCountry(ctx, iso3)
		if err != nil {
			log.Error(ctx, "error publishing country", err, logData)
			setStatusCode(req, w, err)
			return
		}

		writeJSON(req, w, http.StatusOK, mapper.PublishedCountry(hdxURL, outcome))
	}
}

// RequireServiceAuth rejects requests that do not carry the service auth token.
// An empty token disables the check.
func RequireServiceAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			got, err := headers.GetServiceAuthToken(req)
			if err != nil || got == "" {
				log.Warn(ctx, "request without service auth token", log.Data{"path": req.URL.Path})
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			got = strings.TrimPrefix(got, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.Warn(ctx, "request with invalid service auth token", log.Data{"path": req.URL.Path})
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
