// Package apiclient is the single HTTP gateway to the UniSwap REST backend.
//
// Every request goes through Client.Do (or Client.Upload for multipart):
//
//   - the persisted token is read from a TokenStore before each request;
//     an expired or undecodable token is purged together with the user
//     snapshot and the request continues unauthenticated, a valid one is
//     sent as "Authorization: Bearer <token>";
//   - JSON request and response bodies, a fixed timeout, a cookie jar and
//     an X-Request-ID header on every call;
//   - failures come back as *Error, whose Kind also matches the Err*
//     sentinels through errors.Is.
//
// On a 401 the client purges the stored session and notifies every
// registered Observer. It never decides where the user goes next.
package apiclient
