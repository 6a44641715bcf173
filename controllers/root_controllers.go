package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const landingPage = `<html>
	<head>
		<title>Welcome to Restaurant Chain Restful API</title>
	</head>
	<body>
		<h1>Welcome to Restaurant Chain Restful API</h1>
		<p><b>List of all our Endpoints:</b></p>
		<ul>
			<li>GET /menu/all_info</li>
			<li>GET /menu/{item_id}</li>
			<li>POST /menu</li>
			<li>PUT /menu/{item_id}</li>
			<li>DELETE /menu/{item_id}</li>
			<li>GET /orders/all_info</li>
			<li>GET /orders/{order_id}/details</li>
			<li>GET /orders/{order_id}/total_price</li>
			<li>POST /orders/add</li>
			<li>PUT /orders/{order_id}/change_status</li>
			<li>POST /orders/{order_id}/add_items</li>
			<li>DELETE /orders/{order_id}</li>
			<li>DELETE /orders/{order_id}/remove_item/{detail_id}</li>
			<li>GET /clients</li>
			<li>POST /clients</li>
			<li>PUT /clients/{client_id}</li>
			<li>DELETE /clients/{client_id}</li>
		</ul>
	</body>
</html>`

// Index serves the HTML landing page listing every endpoint.
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}
