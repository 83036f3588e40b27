// Package response builds handler.Response values for text, JSON and
// structured errors.
//
//	func status(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "healthy"})
//	}
//
// Handlers report failures with Error; the router's error handler turns
// them into a reply. JSONErrorHandler writes an HTTPError body:
//
//	{"code": "unprocessable_entity", "message": "texts is required"}
//
// Errors that are not HTTPError are mapped by their StatusCode method, or to
// 500, with the original message under details.cause.
package response
