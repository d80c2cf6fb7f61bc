// Package docs registra a especificação OpenAPI servida em /swagger.
// O template é mantido à mão junto com as anotações dos handlers; as rotas
// de /v1 são conferidas contra o router em router_test.go.
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
        "/v1/stock": {
            "get": {"tags": ["stock"], "summary": "Lista as peças do estoque", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.StockItem"}}}}},
            "post": {"tags": ["stock"], "summary": "Cadastra uma peça", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.NewStockItem"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.StockItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/v1/stock/low": {
            "get": {"tags": ["stock"], "summary": "Lista as peças com estoque baixo", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "threshold", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.StockItem"}}}}}
        },
        "/v1/stock/{id}": {
            "get": {"tags": ["stock"], "summary": "Busca uma peça pelo ID", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}},
            "put": {"tags": ["stock"], "summary": "Atualiza campos de uma peça", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.StockItemPatch"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}},
            "delete": {"tags": ["stock"], "summary": "Remove uma peça",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/v1/movements": {
            "get": {"tags": ["movements"], "summary": "Lista todas as movimentações em ordem de inserção", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Movement"}}}}},
            "post": {"tags": ["movements"], "summary": "Registra uma entrada ou saída", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "movement", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.NewMovement"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Movement"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/v1/movements/recent": {
            "get": {"tags": ["movements"], "summary": "Lista as movimentações mais recentes", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Movement"}}}}}
        },
        "/v1/requests": {
            "get": {"tags": ["requests"], "summary": "Lista as solicitações", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "status", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SolicitacaoPeca"}}}}},
            "post": {"tags": ["requests"], "summary": "Abre uma solicitação de peça", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.NewSolicitacao"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.SolicitacaoPeca"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/v1/requests/{id}/status": {
            "patch": {"tags": ["requests"], "summary": "Aprova ou rejeita uma solicitação", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "change", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.StatusChange"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SolicitacaoPeca"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/v1/metrics": {
            "get": {"tags": ["metrics"], "summary": "Totais do estoque e movimentações dos últimos 30 dias", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockMetrics"}}}}
        },
        "/v1/metrics/daily": {
            "get": {"tags": ["metrics"], "summary": "Entradas e saídas por dia", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "days", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.DailyMovement"}}}}}
        },
        "/v1/dashboard": {
            "get": {"tags": ["metrics"], "summary": "Painel inicial", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Dashboard"}}}}
        },
        "/v1/reports/movements": {
            "get": {"tags": ["reports"], "summary": "Movimentações filtradas por período e tipo", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "start", "in": "query"}, {"type": "string", "name": "end", "in": "query"}, {"type": "string", "name": "tipo", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Movement"}}}}}
        },
        "/v1/reports/movements.csv": {
            "get": {"tags": ["reports"], "summary": "Exporta as movimentações filtradas em CSV", "produces": ["text/csv"],
                "parameters": [{"type": "string", "name": "start", "in": "query"}, {"type": "string", "name": "end", "in": "query"}, {"type": "string", "name": "tipo", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/v1/reports/movements.xlsx": {
            "get": {"tags": ["reports"], "summary": "Exporta as movimentações filtradas em planilha",
                "parameters": [{"type": "string", "name": "start", "in": "query"}, {"type": "string", "name": "end", "in": "query"}, {"type": "string", "name": "tipo", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/v1/auth/register": {
            "post": {"tags": ["auth"], "summary": "Cadastra um operador", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "operator", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.OperatorRegistration"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.OperatorProfile"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/v1/auth/login": {
            "post": {"tags": ["auth"], "summary": "Autentica um operador", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "domain.ErrorResponse": {"type": "object", "properties": {
            "code": {"type": "integer", "example": 400},
            "category": {"type": "string", "example": "VALIDATION_ERROR"},
            "message": {"type": "string", "example": "Quantidade deve ser maior que zero."}}},
        "domain.StockItem": {"type": "object", "properties": {
            "id": {"type": "string"}, "codigo": {"type": "string"}, "nome": {"type": "string"}, "categoria": {"type": "string"},
            "quantidade": {"type": "integer"}, "unidade": {"type": "string"}, "localizacao": {"type": "string"},
            "valorUnitario": {"type": "number"}, "dataAtualizacao": {"type": "string"}}},
        "domain.NewStockItem": {"type": "object", "properties": {
            "codigo": {"type": "string"}, "nome": {"type": "string"}, "categoria": {"type": "string"},
            "quantidade": {"type": "integer"}, "unidade": {"type": "string"}, "localizacao": {"type": "string"},
            "valorUnitario": {"type": "number"}}},
        "domain.StockItemPatch": {"type": "object", "properties": {
            "codigo": {"type": "string"}, "nome": {"type": "string"}, "categoria": {"type": "string"},
            "quantidade": {"type": "integer"}, "unidade": {"type": "string"}, "localizacao": {"type": "string"},
            "valorUnitario": {"type": "number"}}},
        "domain.Movement": {"type": "object", "properties": {
            "id": {"type": "string"}, "itemId": {"type": "string"}, "itemNome": {"type": "string"},
            "tipo": {"type": "string", "enum": ["entrada", "saida"]}, "quantidade": {"type": "integer"},
            "data": {"type": "string"}, "responsavel": {"type": "string"}, "observacao": {"type": "string"}}},
        "domain.NewMovement": {"type": "object", "properties": {
            "itemId": {"type": "string"}, "tipo": {"type": "string", "enum": ["entrada", "saida"]},
            "quantidade": {"type": "integer"}, "responsavel": {"type": "string"}, "observacao": {"type": "string"}}},
        "domain.SolicitacaoPeca": {"type": "object", "properties": {
            "id": {"type": "string"}, "itemId": {"type": "string"}, "itemNome": {"type": "string"},
            "quantidade": {"type": "integer"}, "solicitante": {"type": "string"}, "matricula": {"type": "string"},
            "data": {"type": "string"}, "status": {"type": "string", "enum": ["pendente", "aprovada", "rejeitada"]},
            "observacao": {"type": "string"}}},
        "domain.NewSolicitacao": {"type": "object", "properties": {
            "itemId": {"type": "string"}, "quantidade": {"type": "integer"}, "solicitante": {"type": "string"},
            "matricula": {"type": "string"}, "observacao": {"type": "string"}}},
        "domain.StatusChange": {"type": "object", "properties": {
            "status": {"type": "string", "enum": ["aprovada", "rejeitada"]}}},
        "domain.StockMetrics": {"type": "object", "properties": {
            "totalItems": {"type": "integer"}, "totalValue": {"type": "number"},
            "entradas": {"type": "integer"}, "saidas": {"type": "integer"}, "itemsCount": {"type": "integer"}}},
        "domain.DailyMovement": {"type": "object", "properties": {
            "date": {"type": "string"}, "label": {"type": "string"},
            "entradas": {"type": "integer"}, "saidas": {"type": "integer"}}},
        "domain.Dashboard": {"type": "object", "properties": {
            "metrics": {"$ref": "#/definitions/domain.StockMetrics"},
            "series": {"type": "array", "items": {"$ref": "#/definitions/domain.DailyMovement"}},
            "recentMovements": {"type": "array", "items": {"$ref": "#/definitions/domain.Movement"}},
            "lowStock": {"type": "array", "items": {"$ref": "#/definitions/domain.StockItem"}}}},
        "domain.OperatorRegistration": {"type": "object", "properties": {
            "nome": {"type": "string"}, "email": {"type": "string"}, "senha": {"type": "string"}, "matricula": {"type": "string"}}},
        "domain.OperatorProfile": {"type": "object", "properties": {
            "id": {"type": "string"}, "nome": {"type": "string"}, "email": {"type": "string"}, "matricula": {"type": "string"}}},
        "domain.LoginRequest": {"type": "object", "properties": {
            "email": {"type": "string"}, "senha": {"type": "string"}}},
        "domain.LoginResponse": {"type": "object", "properties": {
            "token": {"type": "string"}, "operator": {"$ref": "#/definitions/domain.OperatorProfile"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Estoque de Peças API",
	Description:      "Controle de estoque, movimentações e solicitações de peças.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
