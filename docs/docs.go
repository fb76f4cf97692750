// Package docs holds the OpenAPI document served at /swagger/. Regenerate it
// with `swag init -g cmd/arena/main.go --parseInternal` after changing the
// handler annotations.
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
        "/characters/{id}/xp": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "characters"
                ],
                "summary": "Grant XP to a character",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Character ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "XP to add",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.XPUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Accumulated XP",
                        "schema": {
                            "$ref": "#/definitions/arena.XPResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid id or body",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/games/odds/{team}": {
            "get": {
                "description": "Serves the next scripted odds payload; the last step repeats",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Get boss odds for a team",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "team",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Win-rates per boss",
                        "schema": {
                            "$ref": "#/definitions/domain.OddsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid team id",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team not in scenario",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/status": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "status"
                ],
                "summary": "Current simulation status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/simulation.Status"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "arena.XPResponse": {
            "type": "object",
            "properties": {
                "XP": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                }
            }
        },
        "domain.Boss": {
            "type": "object",
            "properties": {
                "win_rate": {
                    "type": "number"
                }
            }
        },
        "domain.OddsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Boss"
                    }
                }
            }
        },
        "domain.XPUpdate": {
            "type": "object",
            "properties": {
                "XP": {
                    "type": "integer",
                    "minimum": 0
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "simulation.Status": {
            "type": "object",
            "properties": {
                "round": {
                    "type": "integer"
                },
                "run_id": {
                    "type": "string"
                },
                "running": {
                    "type": "boolean"
                },
                "started_at": {
                    "type": "string"
                },
                "teams": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/simulation.TeamStatus"
                    }
                }
            }
        },
        "simulation.TeamStatus": {
            "type": "object",
            "properties": {
                "badges_awarded": {
                    "type": "integer"
                },
                "bosses_remaining": {
                    "type": "integer"
                },
                "finished": {
                    "type": "boolean"
                },
                "players": {
                    "type": "integer"
                },
                "team": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BossRush API",
	Description:      "Scripted game API used by the simulator, plus the status endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
