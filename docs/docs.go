// Package docs mantém a especificação Swagger servida em /doc/index.html.
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
        "/api/user/signup": {
            "post": {
                "parameters": [
                    {
                        "description": "Dados do usuário",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.SignupUserRequestDto"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/user.UserResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Cadastro público",
                "description": "Cria um usuário com perfil STAFF. Não exige autenticação.",
                "tags": [
                    "User"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/user": {
            "post": {
                "parameters": [
                    {
                        "description": "Dados do usuário",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.CreateUserRequestDto"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/user.UserResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Cria um usuário",
                "description": "Cria um usuário com o perfil informado (ADMIN ou STAFF).",
                "tags": [
                    "User"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "UUID do usuário",
                        "name": "uuid",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Email do usuário",
                        "name": "email",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.UserResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Busca um usuário",
                "description": "Busca por UUID ou email. STAFF só consulta o próprio cadastro.",
                "tags": [
                    "User"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "description": "UUID do usuário",
                        "name": "uuid",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Email do usuário",
                        "name": "email",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Remove um usuário",
                "description": "Exclui o usuário pelo UUID ou email. O último ADMIN não pode ser removido.",
                "tags": [
                    "User"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/user/list": {
            "get": {
                "parameters": [
                    {
                        "description": "Número da página (padrão 1)",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Tamanho da página (padrão 10)",
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.UserListResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Lista usuários",
                "description": "Lista paginada, ordenada por nome.",
                "tags": [
                    "User"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/user/{identifier}": {
            "patch": {
                "parameters": [
                    {
                        "description": "UUID ou email do usuário",
                        "name": "identifier",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Dados para atualização",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.UpdateUserRequestDto"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.UserResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Atualiza um usuário",
                "description": "Atualiza os campos enviados. O usuário é identificado por UUID ou email no path.",
                "tags": [
                    "User"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "parameters": [
                    {
                        "description": "Credenciais do Usuário (Email e Senha)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login bem-sucedido",
                        "schema": {
                            "$ref": "#/definitions/auth.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Efetua o login do usuário",
                "description": "Recebe email e senha, autentica o usuário e retorna o token de acesso.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/auth/logout/{token}": {
            "post": {
                "parameters": [
                    {
                        "description": "Token de acesso a ser revogado",
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Token revogado com sucesso"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Revoga o token de acesso",
                "description": "Invalida o token de acesso informado.",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/auth/otp": {
            "post": {
                "parameters": [
                    {
                        "description": "Email para envio do OTP",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.OTPRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "OTP enviado com sucesso"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Solicita um código OTP",
                "description": "Gera um OTP vinculado ao e-mail e envia por e-mail.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/auth/password/reset": {
            "post": {
                "parameters": [
                    {
                        "description": "Email, OTP e nova senha",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.OTPResetPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Senha alterada com sucesso"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Troca a senha usando OTP",
                "description": "Valida o OTP e troca a senha do usuário. Sessões abertas são encerradas.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/auth/healthcheck": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Dados do usuário logado",
                        "schema": {
                            "$ref": "#/definitions/auth.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Verifica o status do login",
                "description": "Retorna os dados do usuário logado se o token for válido.",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/client": {
            "post": {
                "parameters": [
                    {
                        "description": "Dados do cliente",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/client.CreateClientRequestDto"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/client.ClientResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Cadastra um cliente",
                "description": "CPF/CNPJ é único. Sexo padrão M e nacionalidade padrão Brasileira(o).",
                "tags": [
                    "Client"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/client/{uuid}": {
            "get": {
                "parameters": [
                    {
                        "description": "UUID do cliente",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/client.ClientResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Busca um cliente",
                "tags": [
                    "Client"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "description": "UUID do cliente",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Campos a atualizar",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/client.UpdateClientRequestDto"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/client.ClientResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Atualiza um cliente",
                "description": "Atualiza apenas os campos enviados. birth_date vazio remove a data.",
                "tags": [
                    "Client"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "description": "UUID do cliente",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Remove um cliente",
                "description": "Remove o cliente e o histórico de documentos gerados para ele.",
                "tags": [
                    "Client"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/client/list": {
            "get": {
                "parameters": [
                    {
                        "description": "Número da página (padrão 1)",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Tamanho da página (padrão 10)",
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Filtra por situação",
                        "name": "active",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    },
                    {
                        "description": "Trecho do nome ou CPF/CNPJ",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/client.ClientListResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Lista clientes",
                "description": "Lista paginada, ordenada por nome. search filtra por nome ou CPF/CNPJ.",
                "tags": [
                    "Client"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/template": {
            "post": {
                "parameters": [
                    {
                        "description": "Título",
                        "name": "title",
                        "in": "formData",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Descrição",
                        "name": "description",
                        "in": "formData",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Arquivo .docx",
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/doctemplate.TemplateResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Cadastra um modelo de documento",
                "description": "Recebe um .docx com tags {{nome}}, {{cpf_cnpj}}, etc. A resposta lista as tags encontradas e as que não serão preenchidas.",
                "tags": [
                    "Template"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/template/{uuid}": {
            "get": {
                "parameters": [
                    {
                        "description": "UUID do modelo",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/doctemplate.TemplateResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Busca um modelo",
                "tags": [
                    "Template"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "parameters": [
                    {
                        "description": "UUID do modelo",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Título",
                        "name": "title",
                        "in": "formData",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Descrição",
                        "name": "description",
                        "in": "formData",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Novo arquivo .docx",
                        "name": "file",
                        "in": "formData",
                        "required": false,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/doctemplate.TemplateResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Atualiza um modelo",
                "description": "Campos omitidos são mantidos. Um novo arquivo substitui o anterior.",
                "tags": [
                    "Template"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "description": "UUID do modelo",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Remove um modelo",
                "description": "Remove o registro e o arquivo. Documentos gerados continuam no histórico sem referência ao modelo.",
                "tags": [
                    "Template"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/template/list": {
            "get": {
                "parameters": [
                    {
                        "description": "Número da página (padrão 1)",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Tamanho da página (padrão 10)",
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/doctemplate.TemplateListResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Lista modelos",
                "description": "Lista paginada, ordenada por título.",
                "tags": [
                    "Template"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/template/{uuid}/file": {
            "get": {
                "parameters": [
                    {
                        "description": "UUID do modelo",
                        "name": "uuid",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Baixa o arquivo original do modelo",
                "tags": [
                    "Template"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/document/generate/{client}/{template}": {
            "get": {
                "parameters": [
                    {
                        "description": "UUID do cliente",
                        "name": "client",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "UUID do modelo",
                        "name": "template",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Gera um documento",
                "description": "Preenche o modelo com os dados do cliente, registra no histórico e devolve o .docx.",
                "tags": [
                    "Document"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/document/list": {
            "get": {
                "parameters": [
                    {
                        "description": "Número da página (padrão 1)",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Tamanho da página (padrão 10)",
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "UUID do cliente",
                        "name": "client",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/document.DocumentListResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Histórico de documentos",
                "description": "Documentos gerados, do mais recente para o mais antigo.",
                "tags": [
                    "Document"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/document/dashboard": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/document.DashboardResponseDto"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/rest_err.RestErr"
                        }
                    }
                },
                "summary": "Painel",
                "description": "Total de clientes, total de documentos e os últimos documentos gerados.",
                "tags": [
                    "Document"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/user.UserResponseDto"
                },
                "token": {
                    "type": "string"
                },
                "expire": {
                    "type": "string",
                    "format": "date-time"
                },
                "system_time_utc": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "auth.OTPRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            },
            "required": [
                "email"
            ]
        },
        "auth.OTPResetPasswordRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "otp": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "otp",
                "password"
            ]
        },
        "client.ClientListResponseDto": {
            "type": "object",
            "properties": {
                "clients": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/client.ClientResponseDto"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "client.ClientResponseDto": {
            "type": "object",
            "properties": {
                "uuid": {
                    "type": "string",
                    "format": "uuid"
                },
                "full_name": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "marital_status": {
                    "type": "string"
                },
                "disabled": {
                    "type": "boolean"
                },
                "birth_date": {
                    "type": "string"
                },
                "tax_id": {
                    "type": "string"
                },
                "rg": {
                    "type": "string"
                },
                "issuing_authority": {
                    "type": "string"
                },
                "profession": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "postal_code": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                },
                "create_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "update_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "client.CreateClientRequestDto": {
            "type": "object",
            "properties": {
                "full_name": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "marital_status": {
                    "type": "string"
                },
                "disabled": {
                    "type": "boolean"
                },
                "birth_date": {
                    "type": "string"
                },
                "tax_id": {
                    "type": "string"
                },
                "rg": {
                    "type": "string"
                },
                "issuing_authority": {
                    "type": "string"
                },
                "profession": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "postal_code": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "full_name",
                "marital_status",
                "tax_id",
                "profession",
                "street",
                "number",
                "postal_code",
                "contact"
            ]
        },
        "client.UpdateClientRequestDto": {
            "type": "object",
            "properties": {
                "full_name": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "marital_status": {
                    "type": "string"
                },
                "disabled": {
                    "type": "boolean"
                },
                "birth_date": {
                    "type": "string"
                },
                "tax_id": {
                    "type": "string"
                },
                "rg": {
                    "type": "string"
                },
                "issuing_authority": {
                    "type": "string"
                },
                "profession": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "neighborhood": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "postal_code": {
                    "type": "string"
                },
                "contact": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "doctemplate.TemplateListResponseDto": {
            "type": "object",
            "properties": {
                "templates": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/doctemplate.TemplateResponseDto"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "doctemplate.TemplateResponseDto": {
            "type": "object",
            "properties": {
                "uuid": {
                    "type": "string",
                    "format": "uuid"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "create_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "update_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "unknown_tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "document.DashboardResponseDto": {
            "type": "object",
            "properties": {
                "total_clients": {
                    "type": "integer"
                },
                "total_documents": {
                    "type": "integer"
                },
                "recent": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/document.DocumentResponseDto"
                    }
                }
            }
        },
        "document.DocumentListResponseDto": {
            "type": "object",
            "properties": {
                "documents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/document.DocumentResponseDto"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "document.DocumentResponseDto": {
            "type": "object",
            "properties": {
                "uuid": {
                    "type": "string",
                    "format": "uuid"
                },
                "client_uuid": {
                    "type": "string",
                    "format": "uuid"
                },
                "client_name": {
                    "type": "string"
                },
                "template_uuid": {
                    "type": "string",
                    "format": "uuid"
                },
                "kind": {
                    "type": "string"
                },
                "output_file": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string",
                    "format": "uuid"
                },
                "create_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "rest_err.Causes": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "rest_err.RestErr": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "integer"
                },
                "ray_trace_code": {
                    "type": "string"
                },
                "causes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rest_err.Causes"
                    }
                }
            }
        },
        "user.CreateUserRequestDto": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email",
                "password",
                "role"
            ]
        },
        "user.SignupUserRequestDto": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "email",
                "password"
            ]
        },
        "user.UpdateUserRequestDto": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "live": {
                    "type": "boolean"
                }
            }
        },
        "user.UserListResponseDto": {
            "type": "object",
            "properties": {
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/user.UserResponseDto"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "user.UserResponseDto": {
            "type": "object",
            "properties": {
                "uuid": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "live": {
                    "type": "boolean"
                },
                "create_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "update_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sistema Advocacia API",
	Description:      "API do sistema de gestão de clientes e geração de documentos do escritório.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
