// Package docs holds the Swagger description served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/boards": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Board 목록 조회",
                "parameters": [
                    {"type": "string", "name": "ordering", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Board 생성",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateBoardRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.BoardResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/boards/{boardId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Board 조회",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BoardResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Board 수정",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateBoardRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BoardResponse"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Board 삭제",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/boards/{boardId}/participants": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["participants"], "summary": "Board의 Participant 목록 조회",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ParticipantResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["participants"], "summary": "Participant 추가",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddParticipantRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ParticipantResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/boards/{boardId}/participants/{userId}": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["participants"], "summary": "Participant 역할 변경",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}, {"type": "string", "name": "userId", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateParticipantRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ParticipantResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["participants"], "summary": "Participant 제거",
                "parameters": [{"type": "string", "name": "boardId", "in": "path", "required": true}, {"type": "string", "name": "userId", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "카테고리 목록 조회",
                "parameters": [
                    {"type": "string", "name": "board", "in": "query"},
                    {"type": "string", "name": "board__in", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "ordering", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "카테고리 생성",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}}
        },
        "/categories/{categoryId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "카테고리 조회",
                "parameters": [{"type": "string", "name": "categoryId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "카테고리 수정",
                "parameters": [{"type": "string", "name": "categoryId", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCategoryRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "카테고리 삭제",
                "parameters": [{"type": "string", "name": "categoryId", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/goals": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "목표 목록 조회",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "category__in", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "status__in", "in": "query"},
                    {"type": "string", "name": "priority", "in": "query"},
                    {"type": "string", "name": "priority__in", "in": "query"},
                    {"type": "string", "name": "due_date__gte", "in": "query"},
                    {"type": "string", "name": "due_date__lte", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "ordering", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "목표 생성",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateGoalRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.GoalResponse"}}}}
        },
        "/goals/{goalId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "목표 조회",
                "parameters": [{"type": "string", "name": "goalId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GoalResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "목표 수정",
                "parameters": [{"type": "string", "name": "goalId", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateGoalRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GoalResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["goals"], "summary": "목표 삭제 (보관)",
                "parameters": [{"type": "string", "name": "goalId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GoalResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/comments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "댓글 목록 조회",
                "parameters": [
                    {"type": "string", "name": "goal", "in": "query"},
                    {"type": "string", "name": "goal__in", "in": "query"},
                    {"type": "string", "name": "ordering", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SuccessResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "댓글 작성",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCommentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CommentResponse"}}}}
        },
        "/comments/{commentId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "댓글 조회",
                "parameters": [{"type": "string", "name": "commentId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommentResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "댓글 수정",
                "parameters": [{"type": "string", "name": "commentId", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCommentRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommentResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "댓글 삭제",
                "parameters": [{"type": "string", "name": "commentId", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        }
    },
    "definitions": {
        "dto.CreateBoardRequest": {"type": "object", "required": ["title"], "properties": {"title": {"type": "string", "example": "Personal goals"}}},
        "dto.UpdateBoardRequest": {"type": "object", "properties": {"title": {"type": "string", "example": "Team goals"}}},
        "dto.BoardResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "isDeleted": {"type": "boolean"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "dto.AddParticipantRequest": {"type": "object", "required": ["userId"], "properties": {
            "userId": {"type": "string"}, "role": {"type": "string", "example": "writer"}}},
        "dto.UpdateParticipantRequest": {"type": "object", "required": ["role"], "properties": {"role": {"type": "string", "example": "reader"}}},
        "dto.ParticipantResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "boardId": {"type": "string"}, "userId": {"type": "string"},
            "role": {"type": "integer", "example": 2}, "createdAt": {"type": "string"}}},
        "dto.CreateCategoryRequest": {"type": "object", "required": ["boardId", "title"], "properties": {
            "boardId": {"type": "string"}, "title": {"type": "string", "example": "Health"}}},
        "dto.UpdateCategoryRequest": {"type": "object", "properties": {"title": {"type": "string"}}},
        "dto.CategoryResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "boardId": {"type": "string"}, "userId": {"type": "string"}, "title": {"type": "string"},
            "isDeleted": {"type": "boolean"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "dto.CreateGoalRequest": {"type": "object", "required": ["categoryId", "title"], "properties": {
            "categoryId": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "dueDate": {"type": "string"}, "status": {"type": "string", "example": "to_do"}, "priority": {"type": "string", "example": "high"}}},
        "dto.UpdateGoalRequest": {"type": "object", "properties": {
            "categoryId": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "dueDate": {"type": "string"}, "clearDueDate": {"type": "boolean"}, "status": {"type": "string"}, "priority": {"type": "string"}}},
        "dto.GoalResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "categoryId": {"type": "string"}, "userId": {"type": "string"}, "title": {"type": "string"},
            "description": {"type": "string"}, "dueDate": {"type": "string"}, "status": {"type": "integer", "example": 1},
            "priority": {"type": "integer", "example": 2}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "dto.CreateCommentRequest": {"type": "object", "required": ["goalId", "text"], "properties": {
            "goalId": {"type": "string"}, "text": {"type": "string"}}},
        "dto.UpdateCommentRequest": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}},
        "dto.CommentResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "goalId": {"type": "string"}, "userId": {"type": "string"}, "text": {"type": "string"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "dto.PageResponse": {"type": "object", "properties": {
            "items": {}, "total": {"type": "integer"}, "limit": {"type": "integer"}, "offset": {"type": "integer"}}},
        "response.ErrorDetail": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "response.ErrorResponse": {"type": "object", "properties": {"error": {"$ref": "#/definitions/response.ErrorDetail"}}},
        "response.SuccessResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "data": {}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/goals",
	Schemes:          []string{},
	Title:            "Goal Board API",
	Description:      "협업 목표 보드 API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
