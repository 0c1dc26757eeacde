// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ List, BySlug, Search string }
}{
	BlogService: struct{ List, BySlug, Search string }{
		List:   "list",
		BySlug: "byslug",
		Search: "search",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves one page of English posts plus the total page count.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "ListRequest",
						Properties: smd.PropertyList{
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=9 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of posts with total page count`,
					Type:        smd.Object,
					TypeName:    "PageResponse",
					Properties: smd.PropertyList{
						{
							Name: "posts",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/PostSummary",
							},
						},
						{
							Name: "totalPages",
							Type: smd.Integer,
						},
					},
					Definitions: map[string]smd.Definition{
						"PostSummary": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name: "date",
									Type: smd.String,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "excerpt",
									Type: smd.String,
								},
								{
									Name: "featuredImage",
									Type: smd.String,
								},
								{
									Name: "categories",
									Type: smd.Array,
									Items: map[string]string{
										"$ref": "#/definitions/Category",
									},
								},
							},
						},
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "page and pageSize must be positive",
					500: "internal server error",
				},
			},
			"BySlug": {
				Description: `BySlug resolves a post in the requested language, with related posts and
reading time.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "BySlugRequest",
						Properties: smd.PropertyList{
							{
								Name:        "slug",
								Description: `slug post slug`,
								Type:        smd.String,
							},
							{
								Name:        "lang",
								Description: `lang language preference, "en" or "ko"`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `resolved post`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "language",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name: "date",
							Type: smd.String,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "featuredImage",
							Type: smd.String,
						},
						{
							Name: "categories",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Category",
							},
						},
						{
							Name: "readingTime",
							Type: smd.Integer,
						},
						{
							Name: "related",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/PostSummary",
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
							},
						},
						"PostSummary": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name: "date",
									Type: smd.String,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "excerpt",
									Type: smd.String,
								},
								{
									Name: "featuredImage",
									Type: smd.String,
								},
								{
									Name: "categories",
									Type: smd.Array,
									Items: map[string]string{
										"$ref": "#/definitions/Category",
									},
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "slug is required",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Search": {
				Description: `Search combines a free-text query and tag names into one filtered page.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "SearchRequest",
						Properties: smd.PropertyList{
							{
								Name:        "q",
								Description: `q free-text query`,
								Type:        smd.String,
							},
							{
								Name:        "tags",
								Description: `tags comma-separated category names`,
								Type:        smd.String,
							},
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=9 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `filtered page of posts`,
					Type:        smd.Object,
					TypeName:    "PageResponse",
					Properties: smd.PropertyList{
						{
							Name: "posts",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/PostSummary",
							},
						},
						{
							Name: "totalPages",
							Type: smd.Integer,
						},
					},
					Definitions: map[string]smd.Definition{
						"PostSummary": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name: "date",
									Type: smd.String,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "excerpt",
									Type: smd.String,
								},
								{
									Name: "featuredImage",
									Type: smd.String,
								},
								{
									Name: "categories",
									Type: smd.Array,
									Items: map[string]string{
										"$ref": "#/definitions/Category",
									},
								},
							},
						},
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.Integer,
								},
								{
									Name: "name",
									Type: smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "page and pageSize must be positive",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.List:
		var args = struct {
			Req ListRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Req))

	case RPC.BlogService.BySlug:
		var args = struct {
			Req BySlugRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.BySlug(ctx, args.Req))

	case RPC.BlogService.Search:
		var args = struct {
			Req SearchRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Search(ctx, args.Req))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
