package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/http"
	. "github.com/smartystreets/goconvey/convey"
)

var ctx = context.Background()

// fakeCKAN is an in-memory catalog serving the actions used by the client
type fakeCKAN struct {
	mu           sync.Mutex
	calls        []string
	apiKeys      []string
	datasets     map[string]models.Dataset
	showcases    map[string]models.Showcase
	associations map[string]bool
	views        map[string][]models.ResourceView
	nextID       int
	down         bool
	statuses     map[string]int
}

func newFakeCKAN() *fakeCKAN {
	return &fakeCKAN{
		datasets:     map[string]models.Dataset{},
		showcases:    map[string]models.Showcase{},
		associations: map[string]bool{},
		views:        map[string][]models.ResourceView{},
		statuses:     map[string]int{},
	}
}

func (f *fakeCKAN) id(prefix string) string {
	f.nextID++
	return prefix + "-" + strconv.Itoa(f.nextID)
}

func (f *fakeCKAN) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	action := strings.TrimPrefix(req.URL.Path, "/api/3/action/")
	f.calls = append(f.calls, action)
	f.apiKeys = append(f.apiKeys, req.Header.Get("Authorization"))

	var payload map[string]json.RawMessage
	json.NewDecoder(req.Body).Decode(&payload)
	str := func(key string) string {
		var s string
		json.Unmarshal(payload[key], &s)
		return s
	}
	raw, _ := json.Marshal(payload)

	ok := func(result interface{}) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "result": result})
	}
	fail := func(status int, kind string) {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": map[string]string{"__type": kind, "message": kind}})
	}

	if status, found := f.statuses[action]; found {
		fail(status, "Internal Server Error")
		return
	}

	switch action {
	case "status_show":
		if f.down {
			fail(http.StatusForbidden, "Authorization Error")
			return
		}
		ok(map[string]string{"ckan_version": "2.9"})
	case "group_list":
		ok([]Location{{Name: "afg", Title: "Afghanistan"}, {Name: "cmr", Title: "Cameroon"}})
	case "package_show":
		d, found := f.datasets[str("id")]
		if !found {
			fail(http.StatusNotFound, "Not Found Error")
			return
		}
		ok(d)
	case "package_create", "package_update":
		var d models.Dataset
		json.Unmarshal(raw, &d)
		if action == "package_create" {
			d.ID = f.id("dataset")
		}
		for i := range d.Resources {
			if d.Resources[i].ID == "" {
				d.Resources[i].ID = f.id("resource")
			}
		}
		f.datasets[d.Name] = d
		ok(d)
	case "ckanext_showcase_show":
		s, found := f.showcases[str("id")]
		if !found {
			fail(http.StatusNotFound, "Not Found Error")
			return
		}
		ok(s)
	case "ckanext_showcase_create", "ckanext_showcase_update":
		var s models.Showcase
		json.Unmarshal(raw, &s)
		if action == "ckanext_showcase_create" {
			s.ID = f.id("showcase")
		}
		f.showcases[s.Name] = s
		ok(s)
	case "ckanext_showcase_package_association_create":
		key := str("package_id") + "/" + str("showcase_id")
		if f.associations[key] {
			fail(http.StatusConflict, "Validation Error")
			return
		}
		f.associations[key] = true
		ok(map[string]string{"package_id": str("package_id"), "showcase_id": str("showcase_id")})
	case "resource_view_list":
		ok(f.views[str("id")])
	case "resource_view_create", "resource_view_update":
		var v models.ResourceView
		json.Unmarshal(raw, &v)
		views := f.views[v.ResourceID]
		if action == "resource_view_create" {
			v.ID = f.id("view")
			views = append(views, v)
		} else {
			for i := range views {
				if views[i].ID == v.ID {
					views[i] = v
				}
			}
		}
		f.views[v.ResourceID] = views
		ok(v)
	default:
		fail(http.StatusBadRequest, "Bad request - Action name not known")
	}
}

func testDataset() *models.Dataset {
	return &models.Dataset{
		Name:                "acled-data-for-cameroon",
		Title:               "Cameroon - Conflict Data",
		OwnerOrg:            "b67e6c74-c185-4f43-b561-0e114a736f19",
		Maintainer:          "8b84230c-e04a-43ec-99e5-41307a203a2f",
		DataUpdateFrequency: "0",
		DatasetDate:         "01/01/1997-12/31/2018",
		Groups:              []models.Group{{Name: "cmr"}},
		Tags:                []models.Tag{{Name: "conflict"}, {Name: "HXL"}},
		Resources: []models.Resource{{
			Name:        "Conflict Data for Cameroon",
			Description: "Conflict data with HXL tags",
			Format:      "csv",
			URL:         "https://data.humdata.org/hxlproxy/data.csv?url=http%3A%2F%2Flala%3Fiso%3D120&header-row=1",
		}},
	}
}

func testShowcase() *models.Showcase {
	return &models.Showcase{
		Name:     "acled-data-for-cameroon-showcase",
		Title:    "Dashboard for Cameroon",
		Notes:    "Conflict Data Dashboard for Cameroon",
		URL:      "https://www.acleddata.com/dashboard/#120",
		ImageURL: "https://www.acleddata.com/wp-content/uploads/2018/01/dash.png",
		Tags:     []models.Tag{{Name: "conflict"}},
	}
}

func TestWriteRetries(t *testing.T) {
	Convey("Given a catalog reached through a client that retries", t, func() {
		fake := newFakeCKAN()
		server := httptest.NewServer(fake)
		defer server.Close()

		httpClient := dphttp.NewClient()
		httpClient.SetMaxRetries(3)
		client := New(server.URL, "secret", httpClient)

		Convey("The write action paths are excluded from retries", func() {
			So(client.WritePaths(), ShouldContain, "/api/3/action/ckanext_showcase_package_association_create")
			So(client.WritePaths(), ShouldContain, "/api/3/action/package_create")
			So(client.WritePaths(), ShouldNotContain, "/api/3/action/package_show")
		})

		Convey("When a showcase is saved twice", func() {
			_, err := client.CreateShowcase(ctx, testShowcase(), "acled-data-for-cameroon")
			So(err, ShouldBeNil)
			_, err = client.CreateShowcase(ctx, testShowcase(), "acled-data-for-cameroon")
			So(err, ShouldBeNil)

			Convey("Then the existing association is requested exactly once more", func() {
				So(fake.calls[3:], ShouldResemble, []string{"ckanext_showcase_show", "ckanext_showcase_update", "ckanext_showcase_package_association_create"})
			})
		})

		Convey("When creating a dataset fails on the server", func() {
			fake.statuses["package_create"] = http.StatusInternalServerError
			_, err := client.CreateOrUpdateDataset(ctx, testDataset())

			Convey("Then the create is not resent", func() {
				So(err, ShouldNotBeNil)
				So(fake.calls, ShouldResemble, []string{"package_show", "package_create"})
			})
		})

		Convey("When reading a dataset fails on the server", func() {
			fake.statuses["package_show"] = http.StatusInternalServerError
			_, err := client.GetDataset(ctx, "acled-data-for-cameroon")

			Convey("Then the read is retried", func() {
				So(err, ShouldNotBeNil)
				So(fake.calls, ShouldHaveLength, 4)
			})
		})
	})

	Convey("A catalog under a path keeps the prefix in its write paths", t, func() {
		client := New("https://hdx.example/ckan/", "", &HTTPClientMock{})
		So(client.WritePaths()[0], ShouldEqual, "/ckan/api/3/action/package_create")
	})
}

func TestClient(t *testing.T) {
	Convey("Given a catalog", t, func() {
		fake := newFakeCKAN()
		server := httptest.NewServer(fake)
		defer server.Close()

		client := New(server.URL+"/", "secret", dphttp.NewClient())

		Convey("When the valid locations are requested", func() {
			locations, err := client.GetValidLocations(ctx)

			Convey("Then the location groups are returned", func() {
				So(err, ShouldBeNil)
				So(locations, ShouldHaveLength, 2)
				So(locations.Contains("CMR"), ShouldBeTrue)
				So(locations.Contains("afg"), ShouldBeTrue)
				So(fake.apiKeys[0], ShouldEqual, "secret")
			})
		})

		Convey("When a new dataset is saved", func() {
			persisted, err := client.CreateOrUpdateDataset(ctx, testDataset())

			Convey("Then it is created and its resource is given an id", func() {
				So(err, ShouldBeNil)
				So(fake.calls, ShouldResemble, []string{"package_show", "package_create"})
				So(persisted.ID, ShouldNotBeEmpty)
				So(persisted.Resources, ShouldHaveLength, 1)
				So(persisted.Resources[0].ID, ShouldNotBeEmpty)
				So(persisted.DatasetDate, ShouldEqual, "01/01/1997-12/31/2018")
			})

			Convey("And when it is saved again", func() {
				again, err := client.CreateOrUpdateDataset(ctx, testDataset())

				Convey("Then it is updated keeping its ids", func() {
					So(err, ShouldBeNil)
					So(fake.calls[2:], ShouldResemble, []string{"package_show", "package_update"})
					So(again.ID, ShouldEqual, persisted.ID)
					So(again.Resources[0].ID, ShouldEqual, persisted.Resources[0].ID)
				})
			})
		})

		Convey("When an invalid dataset is saved", func() {
			dataset := testDataset()
			dataset.OwnerOrg = "acled"
			_, err := client.CreateOrUpdateDataset(ctx, dataset)

			Convey("Then it is rejected before calling the catalog", func() {
				So(err, ShouldNotBeNil)
				So(fake.calls, ShouldBeEmpty)
			})
		})

		Convey("When a showcase is saved", func() {
			showcase, err := client.CreateShowcase(ctx, testShowcase(), "acled-data-for-cameroon")

			Convey("Then it is created and associated with the dataset", func() {
				So(err, ShouldBeNil)
				So(showcase.ID, ShouldNotBeEmpty)
				So(fake.calls, ShouldResemble, []string{"ckanext_showcase_show", "ckanext_showcase_create", "ckanext_showcase_package_association_create"})
			})

			Convey("And when it is saved again the existing association is kept", func() {
				again, err := client.CreateShowcase(ctx, testShowcase(), "acled-data-for-cameroon")

				So(err, ShouldBeNil)
				So(again.ID, ShouldEqual, showcase.ID)
				So(fake.calls[3:], ShouldResemble, []string{"ckanext_showcase_show", "ckanext_showcase_update", "ckanext_showcase_package_association_create"})
			})
		})

		Convey("When a resource view is saved", func() {
			view := &models.ResourceView{ResourceID: "resource-1", Title: "Quick Charts", ViewType: "hdx_hxl_preview", HXLPreviewConfig: "{}"}
			first, err := client.CreateResourceView(ctx, view)
			So(err, ShouldBeNil)

			Convey("Then a second save replaces the view with the same title", func() {
				second, err := client.CreateResourceView(ctx, view)

				So(err, ShouldBeNil)
				So(second.ID, ShouldEqual, first.ID)
				So(fake.views["resource-1"], ShouldHaveLength, 1)
				So(fake.calls, ShouldResemble, []string{"resource_view_list", "resource_view_create", "resource_view_list", "resource_view_update"})
			})
		})

		Convey("When a resource view has no resource id", func() {
			_, err := client.CreateResourceView(ctx, &models.ResourceView{Title: "Quick Charts"})

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
				So(fake.calls, ShouldBeEmpty)
			})
		})

		Convey("When a dataset that does not exist is requested", func() {
			_, err := client.GetDataset(ctx, "acled-data-for-atlantis")

			Convey("Then a not found error is returned", func() {
				So(IsNotFound(err), ShouldBeTrue)
				var catalogErr *Error
				So(errors.As(err, &catalogErr), ShouldBeTrue)
				So(catalogErr.Code(), ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When any action is called", func() {
			_, err := client.GetValidLocations(ctx)

			Convey("Then the request carries the api key", func() {
				So(err, ShouldBeNil)
				So(fake.apiKeys, ShouldResemble, []string{"secret"})
				So(client.URL(), ShouldEqual, server.URL)
			})
		})

		Convey("When the health of the catalog is checked", func() {
			state := healthcheck.NewCheckState("hdx")

			Convey("Then a healthy catalog is reported ok", func() {
				So(client.Checker(ctx, state), ShouldBeNil)
				So(state.Status(), ShouldEqual, healthcheck.StatusOK)
				So(state.Message(), ShouldEqual, MsgHealthy)
			})

			Convey("Then a catalog refusing the check is reported critical", func() {
				fake.down = true
				So(client.Checker(ctx, state), ShouldBeNil)
				So(state.Status(), ShouldEqual, healthcheck.StatusCritical)
				So(state.StatusCode(), ShouldEqual, http.StatusForbidden)
			})
		})
	})
}

func TestMatchResources(t *testing.T) {
	Convey("Existing resource ids are reused by name", t, func() {
		matched := matchResources(
			[]models.Resource{{Name: "Conflict Data for Cameroon"}, {Name: "New"}},
			[]models.Resource{{ID: "r1", Name: "Conflict Data for Cameroon"}},
		)
		So(matched[0].ID, ShouldEqual, "r1")
		So(matched[1].ID, ShouldEqual, "")
	})
}

func TestAction(t *testing.T) {
	Convey("Given an http client that fails", t, func() {
		client := New("https://data.humdata.org", "", &HTTPClientMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection reset")
			},
		})

		_, err := client.GetValidLocations(ctx)

		Convey("Then the error is returned", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "connection reset")
		})
	})

	Convey("Given a response that is not a catalog envelope", t, func() {
		mock := &HTTPClientMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusBadGateway,
					Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
				}, nil
			},
		}
		client := New("https://data.humdata.org", "", mock)

		err := client.action(ctx, "status_show", map[string]string{}, nil)

		Convey("Then a catalog error with the response status is returned", func() {
			var catalogErr *Error
			So(errors.As(err, &catalogErr), ShouldBeTrue)
			So(catalogErr.Code(), ShouldEqual, http.StatusBadGateway)
			So(mock.DoCalls()[0].Req.URL.String(), ShouldEqual, "https://data.humdata.org/api/3/action/status_show")
			So(mock.DoCalls()[0].Req.Header.Get("Authorization"), ShouldEqual, "")
		})
	})

	Convey("Given an unsuccessful envelope with status ok", t, func() {
		client := New("https://data.humdata.org", "", &HTTPClientMock{
			DoFunc: func(ctx context.Context, req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(`{"success": false, "error": {"__type": "Validation Error", "message": "bad"}}`)),
				}, nil
			},
		})

		err := client.action(ctx, "package_create", map[string]string{}, nil)

		Convey("Then it is reported as a failure", func() {
			So(err, ShouldNotBeNil)
			So(err.(*Error).Type, ShouldEqual, "Validation Error")
			So(err.(*Error).Code(), ShouldEqual, http.StatusInternalServerError)
		})
	})
}
