package catalog

import (
	"context"

	"github.com/ONSdigital/dp-acled-hdx-publisher/acled"
	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

// Location is an HDX location group
type Location struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// GetValidLocations returns the location identifiers the catalog accepts
func (c *Client) GetValidLocations(ctx context.Context) (acled.Locations, error) {
	var groups []Location
	if err := c.action(ctx, "group_list", map[string]interface{}{"all_fields": true}, &groups); err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.Name)
	}

	log.Info(ctx, "retrieved valid locations", log.Data{"count": len(ids)})
	return acled.NewLocations(ids...), nil
}

// GetDataset returns the dataset with the given name or id
func (c *Client) GetDataset(ctx context.Context, name string) (*models.Dataset, error) {
	var dataset models.Dataset
	if err := c.action(ctx, "package_show", map[string]string{"id": name}, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// CreateOrUpdateDataset creates the dataset, or updates it when a dataset with
// the same name exists. Resources keep their ids when matched by name. The
// persisted dataset, with resource ids, is returned.
func (c *Client) CreateOrUpdateDataset(ctx context.Context, dataset *models.Dataset) (*models.Dataset, error) {
	if err := c.validate.Struct(dataset); err != nil {
		return nil, errors.Wrapf(err, "invalid dataset %s", dataset.Name)
	}
	logData := log.Data{"dataset": dataset.Name}

	existing, err := c.GetDataset(ctx, dataset.Name)
	if err != nil && !IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to look up dataset %s", dataset.Name)
	}

	payload := *dataset
	action := "package_create"
	if existing != nil {
		action = "package_update"
		payload.ID = existing.ID
		payload.Resources = matchResources(dataset.Resources, existing.Resources)
		logData["id"] = existing.ID
	}

	var persisted models.Dataset
	if err := c.action(ctx, action, payload, &persisted); err != nil {
		return nil, errors.Wrapf(err, "failed to save dataset %s", dataset.Name)
	}

	logData["action"] = action
	log.Info(ctx, "saved dataset", logData)
	return &persisted, nil
}

// matchResources copies the ids of existing resources onto resources with the same name
func matchResources(resources, existing []models.Resource) []models.Resource {
	ids := make(map[string]string, len(existing))
	for _, r := range existing {
		ids[r.Name] = r.ID
	}

	matched := make([]models.Resource, len(resources))
	for i, r := range resources {
		if id, ok := ids[r.Name]; ok && r.ID == "" {
			r.ID = id
		}
		matched[i] = r
	}
	return matched
}

// CreateShowcase creates or updates the showcase and associates it with the
// named dataset
func (c *Client) CreateShowcase(ctx context.Context, showcase *models.Showcase, datasetName string) (*models.Showcase, error) {
	if err := c.validate.Struct(showcase); err != nil {
		return nil, errors.Wrapf(err, "invalid showcase %s", showcase.Name)
	}

	var existing models.Showcase
	err := c.action(ctx, "ckanext_showcase_show", map[string]string{"id": showcase.Name}, &existing)
	if err != nil && !IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to look up showcase %s", showcase.Name)
	}

	payload := *showcase
	action := "ckanext_showcase_create"
	if err == nil {
		action = "ckanext_showcase_update"
		payload.ID = existing.ID
	}

	var persisted models.Showcase
	if err := c.action(ctx, action, payload, &persisted); err != nil {
		return nil, errors.Wrapf(err, "failed to save showcase %s", showcase.Name)
	}

	association := map[string]string{
		"package_id":  datasetName,
		"showcase_id": persisted.ID,
	}
	if err := c.action(ctx, "ckanext_showcase_package_association_create", association, nil); err != nil && !isConflict(err) {
		return nil, errors.Wrapf(err, "failed to add dataset %s to showcase %s", datasetName, showcase.Name)
	}

	log.Info(ctx, "saved showcase", log.Data{"showcase": showcase.Name, "dataset": datasetName, "action": action})
	return &persisted, nil
}

// CreateResourceView creates the view, replacing a view of the resource with
// the same title
func (c *Client) CreateResourceView(ctx context.Context, view *models.ResourceView) (*models.ResourceView, error) {
	if view.ResourceID == "" {
		return nil, errors.New("resource view has no resource id")
	}

	var views []models.ResourceView
	if err := c.action(ctx, "resource_view_list", map[string]string{"id": view.ResourceID}, &views); err != nil {
		return nil, errors.Wrapf(err, "failed to list views of resource %s", view.ResourceID)
	}

	payload := *view
	action := "resource_view_create"
	for _, v := range views {
		if v.Title == view.Title {
			action = "resource_view_update"
			payload.ID = v.ID
			break
		}
	}

	var persisted models.ResourceView
	if err := c.action(ctx, action, payload, &persisted); err != nil {
		return nil, errors.Wrapf(err, "failed to save view of resource %s", view.ResourceID)
	}

	log.Info(ctx, "saved resource view", log.Data{"resource_id": view.ResourceID, "action": action})
	return &persisted, nil
}
