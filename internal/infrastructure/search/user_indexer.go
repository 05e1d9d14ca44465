package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/user-directory/internal/domain/entity"
)

// UserIndexer mirrors directory records into an Elasticsearch index.
type UserIndexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewUserIndexer(es *elasticsearch.Client, index string) *UserIndexer {
	return &UserIndexer{ES: es, Index: index}
}

type userDocument struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Age                int    `json:"age"`
	ProfileID          int    `json:"profile_id"`
	ProfileCode        string `json:"profile_code"`
	ProfileDisplayName string `json:"profile_display_name"`
	CreatedAt          string `json:"created_at"`
}

func toDocument(u entity.User) userDocument {
	return userDocument{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Age:                u.Age,
		ProfileID:          u.Profile.ID,
		ProfileCode:        u.Profile.Code,
		ProfileDisplayName: u.Profile.DisplayName,
		CreatedAt:          u.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (x *UserIndexer) IndexUser(ctx context.Context, u entity.User) error {
	b, err := json.Marshal(toDocument(u))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.Index,
		DocumentID: strconv.Itoa(u.ID),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	return x.do(ctx, req)
}

// DeleteUser removes the document. A missing document is not an error.
func (x *UserIndexer) DeleteUser(ctx context.Context, id int) error {
	req := esapi.DeleteRequest{Index: x.Index, DocumentID: strconv.Itoa(id)}
	res, err := req.Do(ctx, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

func (x *UserIndexer) do(ctx context.Context, req esapi.Request) error {
	res, err := req.Do(ctx, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}
