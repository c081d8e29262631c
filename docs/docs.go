// Package docs registers the OpenAPI document served under /swagger.
// Keep it in step with the swag annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categorias": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "List all categories with their products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.CategoryResponse"}}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Create a new category",
                "parameters": [
                    {"description": "Category to add", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "409": {"description": "Category name duplicated", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/categorias/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Get category by ID",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoryResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "Products referencing the category become uncategorized",
                "tags": ["categorias"],
                "summary": "Delete a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted successfully"},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Catalog summary plus the most recently added products",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DashboardResponse"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/produtos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["produtos"],
                "summary": "List all products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Adds a product to the catalog",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["produtos"],
                "summary": "Create a new product",
                "parameters": [
                    {"description": "Product to add", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/produtos/categoria/{categoriaId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["produtos"],
                "summary": "List the products of a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "categoriaId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/produtos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["produtos"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["produtos"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Updated product", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "404": {"description": "Not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["produtos"],
                "summary": "Delete a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted successfully"},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/relatorios/resumo": {
            "get": {
                "description": "Aggregated statistics over every product and category",
                "produces": ["application/json"],
                "tags": ["relatorios"],
                "summary": "Catalog report summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/stats.Summary"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CategoryRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"}
            }
        },
        "handlers.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "quantidade": {"type": "integer"},
                "produtos": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}
            }
        },
        "handlers.DashboardResponse": {
            "type": "object",
            "properties": {
                "totalProdutos": {"type": "integer"},
                "totalCategorias": {"type": "integer"},
                "valorMedio": {"type": "number"},
                "produtosSemCategoria": {"type": "integer"},
                "produtoMaisCaro": {"type": "number"},
                "produtoMaisBarato": {"type": "number"},
                "valorTotalEstoque": {"type": "number"},
                "produtosPorCategoria": {"type": "array", "items": {"$ref": "#/definitions/stats.CategoryShare"}},
                "produtosRecentes": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}}
            }
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "descricao": {"type": "string"},
                "preco": {"type": "number"},
                "categoriaId": {"type": "integer"}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "descricao": {"type": "string"},
                "preco": {"type": "number"},
                "categoriaId": {"type": "integer"},
                "categoriaNome": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handlers.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "stats.CategoryShare": {
            "type": "object",
            "properties": {
                "categoria": {"type": "string"},
                "quantidade": {"type": "integer"},
                "percentual": {"type": "number"}
            }
        },
        "stats.Summary": {
            "type": "object",
            "properties": {
                "totalProdutos": {"type": "integer"},
                "totalCategorias": {"type": "integer"},
                "valorMedio": {"type": "number"},
                "produtosSemCategoria": {"type": "integer"},
                "produtoMaisCaro": {"type": "number"},
                "produtoMaisBarato": {"type": "number"},
                "valorTotalEstoque": {"type": "number"},
                "produtosPorCategoria": {"type": "array", "items": {"$ref": "#/definitions/stats.CategoryShare"}}
            }
        }
    }
}`

// SwaggerInfo holds the API metadata filled into docTemplate.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog Tracker API",
	Description:      "REST API for the product catalog and its statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
